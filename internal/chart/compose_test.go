package chart

import (
	"testing"

	"github.com/shopspring/decimal"

	"stockcast/models"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func fiveDayChart() *models.ChartData {
	return &models.ChartData{
		Symbol: "AAPL",
		Historical: models.ChartHistory{
			Dates:  []string{"2024-03-11", "2024-03-12", "2024-03-13", "2024-03-14", "2024-03-15"},
			Prices: []decimal.Decimal{d(172.10), d(173.40), d(171.90), d(176.00), d(178.25)},
		},
		Prediction:   models.ChartPoint{Date: "2024-03-18", Price: d(182.10)},
		CurrentPrice: d(178.25),
	}
}

func TestComposeAlignsTracks(t *testing.T) {
	series, err := Compose(fiveDayChart())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if series.Len() != 6 {
		t.Fatalf("expected 6 positions for 5 closes plus forecast, got %d", series.Len())
	}
	if series.Dates[5] != "2024-03-18" {
		t.Errorf("forecast date not appended: %s", series.Dates[5])
	}

	for i := 0; i < 5; i++ {
		if series.Historical[i] == nil {
			t.Fatalf("historical track missing value at %d", i)
		}
	}
	if series.Historical[5] != nil {
		t.Error("historical track must be absent at the forecast position")
	}

	for i := 0; i < 4; i++ {
		if series.Forecast[i] != nil {
			t.Errorf("forecast track must be absent at %d", i)
		}
	}
	if series.Forecast[4] == nil || !series.Forecast[4].Equal(d(178.25)) {
		t.Error("forecast track must repeat the last close at the overlap position")
	}
	if series.Forecast[5] == nil || !series.Forecast[5].Equal(d(182.10)) {
		t.Error("forecast track must carry the predicted price at the final position")
	}
}

func TestComposeOverlapIsExactlyOnePosition(t *testing.T) {
	series, err := Compose(fiveDayChart())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	overlaps := 0
	for i := 0; i < series.Len(); i++ {
		if series.Historical[i] != nil && series.Forecast[i] != nil {
			overlaps++
			if i != 4 {
				t.Errorf("overlap at position %d, want only the last historical position", i)
			}
		}
	}
	if overlaps != 1 {
		t.Errorf("expected exactly one overlap position, got %d", overlaps)
	}
}

func TestComposeRejectsBadInput(t *testing.T) {
	if _, err := Compose(nil); err == nil {
		t.Error("nil data must be rejected")
	}

	misaligned := fiveDayChart()
	misaligned.Historical.Prices = misaligned.Historical.Prices[:3]
	if _, err := Compose(misaligned); err == nil {
		t.Error("misaligned dates and prices must be rejected")
	}

	empty := fiveDayChart()
	empty.Historical = models.ChartHistory{}
	if _, err := Compose(empty); err == nil {
		t.Error("empty history must be rejected")
	}
}

func TestSparkline(t *testing.T) {
	series, err := Compose(fiveDayChart())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	line := series.Sparkline()
	if got := len([]rune(line)); got != 6 {
		t.Fatalf("expected 6 glyphs, got %d (%q)", got, line)
	}

	runes := []rune(line)
	if runes[5] != '█' {
		t.Errorf("highest value must render the tallest glyph, got %q", runes[5])
	}
	if runes[2] != '▁' {
		t.Errorf("lowest value must render the shortest glyph, got %q", runes[2])
	}
}

func TestSparklineFlatSeries(t *testing.T) {
	flat := fiveDayChart()
	for i := range flat.Historical.Prices {
		flat.Historical.Prices[i] = d(100)
	}
	flat.Prediction.Price = d(100)

	series, err := Compose(flat)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	line := []rune(series.Sparkline())
	if len(line) != 6 {
		t.Fatalf("expected 6 glyphs, got %d", len(line))
	}
	for i := 1; i < len(line); i++ {
		if line[i] != line[0] {
			t.Fatal("flat series must render a uniform line")
		}
	}
}
