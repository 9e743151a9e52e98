package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stockcast/internal/chart"
	"stockcast/internal/history"
	"stockcast/internal/resolver"
	"stockcast/models"
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7C3AED")).
		Padding(0, 1).
		MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3B82F6")).
		Padding(1, 2).
		Width(72)

	buyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)

	sellStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EF4444")).
		Bold(true)

	holdStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F59E0B")).
		Bold(true)

	mutedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280"))

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EF4444")).
		Bold(true)
)

// DisplayWelcomeBanner shows the welcome banner
func DisplayWelcomeBanner() {
	banner := `
 ███████╗████████╗ ██████╗  ██████╗██╗  ██╗ ██████╗ █████╗ ███████╗████████╗
 ██╔════╝╚══██╔══╝██╔═══██╗██╔════╝██║ ██╔╝██╔════╝██╔══██╗██╔════╝╚══██╔══╝
 ███████╗   ██║   ██║   ██║██║     █████╔╝ ██║     ███████║███████╗   ██║
 ╚════██║   ██║   ██║   ██║██║     ██╔═██╗ ██║     ██╔══██║╚════██║   ██║
 ███████║   ██║   ╚██████╔╝╚██████╗██║  ██╗╚██████╗██║  ██║███████║   ██║
 ╚══════╝   ╚═╝    ╚═════╝  ╚═════╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚══════╝   ╚═╝

              📈 Stock Quotes, Forecasts & Trading Signals 📈
`

	welcomeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7C3AED")).
		Bold(true).
		Align(lipgloss.Center).
		Width(80)

	fmt.Print(welcomeStyle.Render(banner))
	fmt.Println()
}

// DisplayError shows an error message
func DisplayError(message string) {
	fmt.Println(errorStyle.Render(fmt.Sprintf("❌ %s", message)))
}

// DisplayInfo shows an info message
func DisplayInfo(message string) {
	fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Render(fmt.Sprintf("ℹ️  %s", message)))
}

func signalStyle(signal string) lipgloss.Style {
	switch strings.ToUpper(signal) {
	case "BUY", "STRONG BUY":
		return buyStyle
	case "SELL", "STRONG SELL":
		return sellStyle
	default:
		return holdStyle
	}
}

func signalIcon(signal string) string {
	switch strings.ToUpper(signal) {
	case "BUY", "STRONG BUY":
		return "🟢"
	case "SELL", "STRONG SELL":
		return "🔴"
	default:
		return "🟡"
	}
}

// DisplayResult renders one resolution, success or failure.
func DisplayResult(result *resolver.Result) {
	if result == nil {
		return
	}
	if !result.OK() {
		DisplayError(result.Failure.Message)
		return
	}

	s := result.Success
	if s.Analysis != nil {
		displayAnalysis(s)
		return
	}

	if s.Quote != nil {
		displayQuote(s.Quote)
	}
	if s.Prediction != nil {
		displayPrediction(s.Prediction)
	}
	if s.Signal != nil {
		displaySignal(s.Signal)
	}
	if s.Chart != nil {
		displayChart(s.Chart)
	}
}

func displayQuote(q *models.Quote) {
	var content strings.Builder
	content.WriteString(fmt.Sprintf("💰 %s\n\n", q.Symbol))
	content.WriteString(fmt.Sprintf("Price:          %s\n", q.Price))
	content.WriteString(fmt.Sprintf("Change:         %s (%s)\n", q.Change, q.ChangePercent))
	content.WriteString(fmt.Sprintf("Volume:         %d\n", q.Volume))
	content.WriteString(fmt.Sprintf("Trading Day:    %s", q.LatestTradingDay))
	if q.Source != "" {
		content.WriteString(fmt.Sprintf("\nSource:         %s", q.Source))
	}
	fmt.Println(panelStyle.Render(content.String()))
}

func displayPrediction(p *models.Prediction) {
	arrow := "➡️"
	if p.PredictionChange.IsPositive() {
		arrow = "📈"
	} else if p.PredictionChange.IsNegative() {
		arrow = "📉"
	}

	var content strings.Builder
	content.WriteString(fmt.Sprintf("%s Next-Day Forecast\n\n", arrow))
	content.WriteString(fmt.Sprintf("Current Price:    %s\n", p.CurrentPrice))
	content.WriteString(fmt.Sprintf("Predicted Price:  %s\n", p.PredictedPrice))
	content.WriteString(fmt.Sprintf("Expected Change:  %s (%s%%)", p.PredictionChange, p.PredictionChangePercent))
	fmt.Println(panelStyle.Render(content.String()))
}

func displaySignal(sig *models.Signal) {
	style := signalStyle(sig.Signal)

	var content strings.Builder
	content.WriteString(fmt.Sprintf("%s Signal: %s\n\n", signalIcon(sig.Signal), style.Render(sig.Signal)))
	content.WriteString(fmt.Sprintf("Strategy:       %s\n", sig.PortfolioType.GetDisplayName()))
	content.WriteString(fmt.Sprintf("Confidence:     %s\n", sig.Confidence))
	if sig.Timing != "" {
		content.WriteString(fmt.Sprintf("Timing:         %s\n", sig.Timing))
	}
	if sig.Reason != "" {
		content.WriteString(fmt.Sprintf("Reason:         %s", sig.Reason))
	}
	fmt.Println(panelStyle.Render(content.String()))
}

func displayChart(data *models.ChartData) {
	series, err := chart.Compose(data)
	if err != nil {
		DisplayError(fmt.Sprintf("Chart unavailable: %v", err))
		return
	}

	var content strings.Builder
	content.WriteString("📊 Price History & Forecast\n\n")
	content.WriteString(series.Sparkline())
	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("%s → %s", series.Dates[0], series.Dates[series.Len()-1]))
	content.WriteString(mutedStyle.Render("  (last point is the forecast)"))
	fmt.Println(panelStyle.Render(content.String()))
}

func displayAnalysis(s *resolver.Success) {
	a := s.Analysis

	if !a.Success {
		DisplayError(a.Error)
		if len(a.Examples) > 0 {
			fmt.Println("\n💡 Try asking:")
			for _, example := range a.Examples {
				fmt.Printf("  • %s\n", example)
			}
		}
		return
	}

	header := fmt.Sprintf("🤖 Analysis: %s", a.Symbol)
	if a.CompanyName != "" {
		header = fmt.Sprintf("🤖 Analysis: %s (%s)", a.CompanyName, a.Symbol)
	}
	fmt.Println(titleStyle.Render(header))

	if a.ParsedQuery != nil && a.ParsedQuery.DetectedIntent != "" {
		fmt.Println(mutedStyle.Render(fmt.Sprintf("Understood as: %s about %s", a.ParsedQuery.DetectedIntent, a.ParsedQuery.DetectedCompany)))
		fmt.Println()
	}

	if a.Verdict != nil {
		displayVerdict(a.Verdict)
	}
	if s.Quote != nil {
		displayQuote(s.Quote)
	}
	if s.Prediction != nil {
		displayPrediction(s.Prediction)
	}
	if s.Signal != nil {
		displaySignal(s.Signal)
	}
	if a.NewsSentiment != nil {
		displayNewsSentiment(a.NewsSentiment, a.NewsArticles)
	}
	if a.TradingPlan != nil {
		displayTradingPlan(a.TradingPlan)
	}

	fmt.Println(mutedStyle.Render(fmt.Sprintf("Provider: %s", s.Provider)))
}

func displayVerdict(v *models.AnalysisVerdict) {
	decision := "⛔ Not recommended"
	if v.ShouldInvest {
		decision = "✅ Worth considering"
	}

	var content strings.Builder
	content.WriteString(fmt.Sprintf("%s Recommendation: %s\n\n", signalIcon(v.Recommendation), signalStyle(v.Recommendation).Render(v.Recommendation)))
	content.WriteString(fmt.Sprintf("Confidence:     %s (%.0f%%)\n", v.Confidence, v.ConfidenceScore))
	content.WriteString(fmt.Sprintf("Decision:       %s", decision))
	if v.Reasoning != "" {
		content.WriteString(fmt.Sprintf("\n\n%s", v.Reasoning))
	}
	fmt.Println(panelStyle.Render(content.String()))
}

func displayNewsSentiment(sentiment *models.NewsSentiment, articles []models.NewsArticle) {
	var content strings.Builder
	content.WriteString(fmt.Sprintf("📰 News Sentiment: %s %s (%d articles)\n", sentiment.Emoji, sentiment.Label, sentiment.ArticleCount))

	max := len(articles)
	if max > 3 {
		max = 3
	}
	for _, article := range articles[:max] {
		content.WriteString(fmt.Sprintf("\n  • %s", truncateString(article.Title, 60)))
		if article.Source != "" {
			content.WriteString(mutedStyle.Render(fmt.Sprintf(" (%s)", article.Source)))
		}
	}
	fmt.Println(panelStyle.Render(content.String()))
}

func displayTradingPlan(plan *models.TradingPlan) {
	currency := ""
	if plan.Currency != nil {
		currency = plan.Currency.Symbol
	}

	var content strings.Builder
	content.WriteString(fmt.Sprintf("📋 Trading Plan: %s\n\n", plan.Strategy))
	content.WriteString(fmt.Sprintf("Shares:         %d\n", plan.RecommendedShares))
	content.WriteString(fmt.Sprintf("Budget Needed:  %s%s\n", currency, plan.BudgetRequired))
	content.WriteString(fmt.Sprintf("Entry Price:    %s%s\n", currency, plan.EntryPrice))
	content.WriteString(fmt.Sprintf("Stop Loss:      %s%s\n", currency, plan.StopLoss))
	content.WriteString(fmt.Sprintf("Target Price:   %s%s", currency, plan.TargetPrice))
	if plan.RiskRewardRatio != "" {
		content.WriteString(fmt.Sprintf("\nRisk/Reward:    %s", plan.RiskRewardRatio))
	}
	if plan.HoldingPeriod != "" {
		content.WriteString(fmt.Sprintf("\nHolding Period: %s", plan.HoldingPeriod))
	}
	fmt.Println(panelStyle.Render(content.String()))
}

// DisplayTopStocks renders the intraday movers screen.
func DisplayTopStocks(top *models.TopStocksResponse) {
	if !top.Success {
		DisplayError(top.Error)
		return
	}
	if len(top.Stocks) == 0 {
		DisplayInfo("No top stocks available right now.")
		return
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("🔥 Top Stocks Today (%s)", top.Region)))
	fmt.Printf("%-4s %-12s %-28s %10s %8s %7s  %s\n", "#", "Symbol", "Company", "Price", "Change", "Score", "Signal")
	fmt.Println(strings.Repeat("─", 80))

	for i, stock := range top.Stocks {
		fmt.Printf("%-4d %-12s %-28s %10s %7.2f%% %7.1f  %s %s\n",
			i+1,
			stock.Symbol,
			truncateString(stock.CompanyName, 28),
			stock.CurrentPrice.StringFixed(2),
			stock.ChangePercent,
			stock.TradingScore,
			signalIcon(stock.Signal),
			signalStyle(stock.Signal).Render(stock.Signal),
		)
	}
	fmt.Println()
}

// DisplayHistory renders past lookups, newest first.
func DisplayHistory(records []history.Record) {
	if len(records) == 0 {
		DisplayInfo("No history yet. Run an analysis first.")
		return
	}

	fmt.Println(titleStyle.Render("🕑 Recent Lookups"))
	fmt.Printf("%-20s %-12s %-18s %-12s %-10s %s\n", "When", "Symbol", "Mode", "Strategy", "Signal", "Input")
	fmt.Println(strings.Repeat("─", 90))

	for _, rec := range records {
		fmt.Printf("%-20s %-12s %-18s %-12s %-10s %s\n",
			rec.CreatedAt,
			rec.Symbol,
			rec.Mode,
			rec.Strategy,
			rec.Recommendation,
			truncateString(rec.Input, 30),
		)
	}
	fmt.Println()
}

func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
