package explain

import (
	"fmt"

	"TradePulse/internal/domain/models"
)

// SystemPrompt establishes the analyst persona for the chat completion.
// Indonesian register matches the deployment locale.
const SystemPrompt = "Anda analis trading profesional."

// Fallback is the fixed text returned whenever the provider cannot deliver
// an explanation. Callers always get a usable string.
const Fallback = "AI analysis sementara tidak tersedia."

// BuildPrompt formats the classified signal into the user prompt, asking for
// entry price, stop loss, take profit and risk-management guidance.
func BuildPrompt(symbol, assetType string, price float64, sig models.Signal) string {
	return fmt.Sprintf(`Berikan analisis trading untuk %s (%s):
- Perkiraan harga: %.2f
- Signal: %s
- Confidence: %d%%

Berikan rekomendasi trading singkat dengan:
- Entry price
- Stop loss
- Take profit
- Risk management`, symbol, assetType, price, sig.Action, sig.Confidence)
}
