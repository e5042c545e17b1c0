package intent

import "testing"

func TestDetectOrderQueryPhrases(t *testing.T) {
	tests := []struct {
		utterance string
		want      bool
	}{
		{"what is my order status", true},
		{"please track order for me", true},
		{"Where IS my Order??", true},
		{"where is my scooter", true},
		{"delivery status please", true},
		{"i lost my order number", true},
		{"any tracking update", true},
		{"when is the delivery", true},
		{"how do i charge the battery", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Detect(tt.utterance).IsOrderQuery; got != tt.want {
			t.Errorf("Detect(%q).IsOrderQuery = %v, want %v", tt.utterance, got, tt.want)
		}
	}
}

func TestDetectOrderNumber(t *testing.T) {
	tests := []struct {
		utterance string
		want      string
	}{
		{"Track order ES240456", "ES240456"},
		{"track es240123 please", "ES240123"},
		{"status of Es240999?", "ES240999"},
		{"order ES240 is missing digits", ""},
		{"ES24045 too short", ""},
		{"no number here", ""},
	}

	for _, tt := range tests {
		if got := Detect(tt.utterance).OrderNumber; got != tt.want {
			t.Errorf("Detect(%q).OrderNumber = %q, want %q", tt.utterance, got, tt.want)
		}
	}
}

func TestDetectSignalsAreIndependent(t *testing.T) {
	d := Detect("ES240111")
	if d.IsOrderQuery {
		t.Errorf("bare order number should not set IsOrderQuery")
	}
	if d.OrderNumber != "ES240111" {
		t.Errorf("expected order number, got %q", d.OrderNumber)
	}
	if !d.HasOrderIntent() {
		t.Errorf("order number alone should count as order intent")
	}

	d = Detect("where is my order")
	if !d.IsOrderQuery || d.OrderNumber != "" {
		t.Errorf("unexpected detection: %+v", d)
	}
}
