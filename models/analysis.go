package models

import "github.com/shopspring/decimal"

// Analysis is the natural-language advisor payload. Success=false here is
// a structured, payload-level outcome (e.g. symbol not recognized), not a
// transport failure: the Error and Examples fields are meant for display.
type Analysis struct {
	Success       bool             `json:"success"`
	Symbol        string           `json:"symbol,omitempty"`
	CompanyName   string           `json:"company_name,omitempty"`
	Quote         *Quote           `json:"quote,omitempty"`
	Prediction    *Prediction      `json:"prediction,omitempty"`
	Signal        *Signal          `json:"signal,omitempty"`
	NewsSentiment *NewsSentiment   `json:"news_sentiment,omitempty"`
	NewsArticles  []NewsArticle    `json:"news_articles,omitempty"`
	Verdict       *AnalysisVerdict `json:"analysis,omitempty"`
	TradingPlan   *TradingPlan     `json:"trading_plan,omitempty"`
	ParsedQuery   *ParsedQuery     `json:"parsed_query,omitempty"`
	Error         string           `json:"error,omitempty"`
	Examples      []string         `json:"examples,omitempty"`
}

// ParsedQuery echoes how the advisor understood the user's question.
type ParsedQuery struct {
	Original        string  `json:"original"`
	DetectedCompany string  `json:"detected_company,omitempty"`
	DetectedIntent  string  `json:"detected_intent,omitempty"`
	Confidence      float64 `json:"confidence,omitempty"`
}

// AnalysisVerdict is the advisor's combined recommendation.
type AnalysisVerdict struct {
	Recommendation  string             `json:"recommendation"`
	Confidence      string             `json:"confidence"`
	ConfidenceScore float64            `json:"confidence_score"`
	ShouldInvest    bool               `json:"should_invest"`
	Reasoning       string             `json:"reasoning,omitempty"`
	Scores          map[string]float64 `json:"scores,omitempty"`
}

// NewsSentiment aggregates per-article sentiment into one label.
type NewsSentiment struct {
	Label        string  `json:"label"`
	Score        float64 `json:"score"`
	Emoji        string  `json:"emoji,omitempty"`
	ArticleCount int     `json:"article_count"`
}

// NewsArticle is one of the top headlines backing the sentiment score.
type NewsArticle struct {
	Title     string  `json:"title"`
	Source    string  `json:"source,omitempty"`
	URL       string  `json:"url,omitempty"`
	Sentiment float64 `json:"sentiment,omitempty"`
}

// TradingPlan is the budget-sized position plan, present only when the
// user supplied a budget.
type TradingPlan struct {
	Strategy          string          `json:"strategy"`
	Description       string          `json:"description,omitempty"`
	BudgetRequired    decimal.Decimal `json:"budget_required"`
	RecommendedShares int             `json:"recommended_shares"`
	EntryPrice        decimal.Decimal `json:"entry_price"`
	StopLoss          decimal.Decimal `json:"stop_loss"`
	TargetPrice       decimal.Decimal `json:"target_price"`
	RiskPerShare      decimal.Decimal `json:"risk_per_share,omitempty"`
	PotentialLoss     decimal.Decimal `json:"potential_loss,omitempty"`
	PotentialProfit   decimal.Decimal `json:"potential_profit,omitempty"`
	RiskRewardRatio   string          `json:"risk_reward_ratio,omitempty"`
	EntryTiming       string          `json:"entry_timing,omitempty"`
	EntryConfidence   string          `json:"entry_confidence,omitempty"`
	ExitTiming        string          `json:"exit_timing,omitempty"`
	HoldingPeriod     string          `json:"holding_period,omitempty"`
	RiskLevel         string          `json:"risk_level,omitempty"`
	CapitalUsedPct    float64         `json:"capital_used_pct,omitempty"`
	Currency          *Currency       `json:"currency,omitempty"`
}

// Currency identifies the market currency a plan is denominated in.
type Currency struct {
	Symbol string `json:"symbol"`
	Code   string `json:"code"`
	Name   string `json:"name,omitempty"`
}
