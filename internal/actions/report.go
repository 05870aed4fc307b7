package actions

import (
	"cashflow.dev/cashflowctl/internal/tui"
)

// report prints the fixed post-setup guidance for the operator
func report(splog *tui.Splog) {
	splog.Newline()
	splog.Info(tui.ColorGreen("🎉 Setup complete!"))
	splog.Newline()
	splog.Info(tui.Bold("Next steps:"))
	splog.Info("  1. Create a Twilio account and enable the WhatsApp sandbox")
	splog.Info("  2. Edit %s with your real credentials", tui.ColorCyan(".env"))
	splog.Info("  3. Test the database connection: %s", tui.ColorCyan("venv/bin/python test_mongodb.py"))
	splog.Info("  4. Start the server: %s", tui.ColorCyan("venv/bin/python app.py"))
	splog.Info("  5. Send a WhatsApp message to your sandbox number as a smoke test")
	splog.Info("  6. Point the Twilio webhook at %s on your public URL", tui.ColorCyan("/webhook/whatsapp"))
	splog.Newline()
	splog.Tip("Run %s at any time to re-check your environment", tui.ColorCyan("cashflowctl doctor"))
}
