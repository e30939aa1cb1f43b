package explain

import (
	"strings"
	"testing"

	"TradePulse/internal/domain/models"
)

func TestBuildPrompt(t *testing.T) {
	sig := models.Signal{Action: models.ActionBuy, Confidence: 75, Reasons: []string{"Price above average"}}
	p := BuildPrompt("BTC", "crypto", 123.456, sig)

	for _, want := range []string{"BTC", "crypto", "123.46", "BUY", "75%", "Entry price", "Stop loss", "Take profit", "Risk management"} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q:\n%s", want, p)
		}
	}
}
