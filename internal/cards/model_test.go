package cards

import "testing"

func TestDecodeCardSelectsVariantByTag(t *testing.T) {
	standard := []byte(`{"id":"c1","card_type":"player","first_name":"Jordan","last_name":"Lopez"}`)
	card, err := DecodeCard(standard)
	if err != nil {
		t.Fatalf("decoding standard card: %v", err)
	}
	sc, ok := card.(*StandardCard)
	if !ok {
		t.Fatalf("expected *StandardCard, got %T", card)
	}
	if sc.DisplayName() != "Jordan Lopez" {
		t.Errorf("display name: got %q", sc.DisplayName())
	}

	rare := []byte(`{"id":"c2","card_type":"rare","title":"Golden Goal","caption":"Final 2025"}`)
	card, err = DecodeCard(rare)
	if err != nil {
		t.Fatalf("decoding rare card: %v", err)
	}
	rc, ok := card.(*RareCard)
	if !ok {
		t.Fatalf("expected *RareCard, got %T", card)
	}
	if rc.Title != "Golden Goal" {
		t.Errorf("title: got %q", rc.Title)
	}

	// A rare payload carrying name fields still decodes as RareCard: the
	// tag decides, not field presence.
	sneaky := []byte(`{"id":"c3","card_type":"super-rare","title":"MVP","first_name":"Alex","last_name":"Kim"}`)
	card, err = DecodeCard(sneaky)
	if err != nil {
		t.Fatalf("decoding super-rare card: %v", err)
	}
	if _, ok := card.(*RareCard); !ok {
		t.Fatalf("expected *RareCard for super-rare, got %T", card)
	}
}

func TestDecodeCardRejectsUnknownOrMissingTag(t *testing.T) {
	if _, err := DecodeCard([]byte(`{"id":"c1","card_type":"mascot"}`)); err == nil {
		t.Error("expected error for unknown card_type")
	}
	if _, err := DecodeCard([]byte(`{"id":"c1"}`)); err == nil {
		t.Error("expected error for missing card_type")
	}
	if _, err := DecodeCard([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestFullCrop(t *testing.T) {
	c := FullCrop()
	if c.X != 0 || c.Y != 0 || c.W != 1 || c.H != 1 || c.RotateDeg != 0 {
		t.Errorf("unexpected default crop: %+v", c)
	}
}
