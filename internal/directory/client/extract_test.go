package client

import "testing"

const sampleBody = `<p><span><b>Tipo</b>: Telemarketing</span></p>
<p><span><b>Devo Atender?</b> N&atilde;o</span></p>
<p><span><b>Tentativa de Burla?</b> Sim</span></p>
<p><span><b>Nome</b>: Operadora XYZ</span></p>
<div class="trust"><span>37<sup>%</sup></span></div>`

func TestParseListing_AllFields(t *testing.T) {
	listing := parseListing(42, sampleBody)

	if listing.PostID != 42 {
		t.Fatalf("expected post id 42, got %d", listing.PostID)
	}
	if listing.Tipo == nil || *listing.Tipo != "Telemarketing" {
		t.Fatalf("unexpected tipo: %v", listing.Tipo)
	}
	if listing.Atender == nil || *listing.Atender != "N&atilde;o" {
		t.Fatalf("unexpected atender: %v", listing.Atender)
	}
	if listing.Burla == nil || *listing.Burla != "Sim" {
		t.Fatalf("unexpected burla: %v", listing.Burla)
	}
	if listing.Nome == nil || *listing.Nome != "Operadora XYZ" {
		t.Fatalf("unexpected nome: %v", listing.Nome)
	}
	if listing.Trust == nil || *listing.Trust != 37 {
		t.Fatalf("unexpected trust: %v", listing.Trust)
	}
}

func TestParseListing_MissingLabelsAreIndependent(t *testing.T) {
	listing := parseListing(7, `<p><span><b>Tipo</b>: Cobranças</span></p>`)

	if listing.Tipo == nil || *listing.Tipo != "Cobranças" {
		t.Fatalf("unexpected tipo: %v", listing.Tipo)
	}
	if listing.Atender != nil || listing.Burla != nil || listing.Nome != nil || listing.Trust != nil {
		t.Fatalf("expected all other fields nil, got %+v", listing)
	}
}

func TestParseListing_EmptyBody(t *testing.T) {
	listing := parseListing(1, "")

	if listing.PostID != 1 {
		t.Fatalf("expected post id kept, got %d", listing.PostID)
	}
	if listing.Tipo != nil || listing.Trust != nil {
		t.Fatalf("expected all fields nil, got %+v", listing)
	}
}

func TestParseListing_ValueTrimmed(t *testing.T) {
	listing := parseListing(1, `<span><b>Nome</b>:   Maria   </span></span>`)

	if listing.Nome == nil || *listing.Nome != "Maria" {
		t.Fatalf("expected trimmed nome, got %v", listing.Nome)
	}
}
