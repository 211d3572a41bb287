package models

import "testing"

func TestSampleItemsOrderAndIDs(t *testing.T) {
	items := SampleItems()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	expected := []Item{
		{ID: 1, Name: "Item 1", Description: "First item"},
		{ID: 2, Name: "Item 2", Description: "Second item"},
		{ID: 3, Name: "Item 3", Description: "Third item"},
	}
	seen := make(map[int]bool)
	for i, item := range items {
		if item != expected[i] {
			t.Errorf("item %d: got %+v, want %+v", i, item, expected[i])
		}
		if seen[item.ID] {
			t.Errorf("duplicate id %d", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestSampleItemsReturnsCopy(t *testing.T) {
	first := SampleItems()
	first[0].Name = "mutated"
	first = append(first, Item{ID: 4})

	second := SampleItems()
	if second[0].Name != "Item 1" {
		t.Errorf("mutation leaked into sample items: %q", second[0].Name)
	}
	if len(second) != 3 {
		t.Errorf("expected 3 items after caller append, got %d", len(second))
	}
}

func TestNewHelloResponse(t *testing.T) {
	if got := NewHelloResponse().Message; got != "Hello from Flask backend!" {
		t.Errorf("unexpected hello message: %q", got)
	}
}
