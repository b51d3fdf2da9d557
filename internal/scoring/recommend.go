package scoring

// normalize combines the sub-scores into the final 0-100 score. The raw
// weighted sum is amplified before normalization: most real sentiment
// means sit between -0.3 and +0.3 and the gain spreads them over more of
// the scale. Amplification can push the value outside [-1, 1]; the final
// clamp bounds it.
func (e *Engine) normalize(c Components) float64 {
	raw := c.Sentiment*e.cfg.WeightSentiment +
		c.Consistency*e.cfg.WeightConsistency +
		c.Volume*e.cfg.WeightVolume +
		c.Recency*e.cfg.WeightRecency

	amplified := raw * e.cfg.Amplification

	return clamp((amplified+1.0)*50.0, 0.0, 100.0)
}

// recommend maps an overall score to a recommendation label. Thresholds
// are evaluated in descending order, first match wins; presentation layers
// must render exactly these bands.
func recommend(score float64) Recommendation {
	switch {
	case score >= 70:
		return StrongBuy
	case score >= 60:
		return Buy
	case score >= 55:
		return WeakBuy
	case score >= 45:
		return Hold
	case score >= 40:
		return WeakSell
	case score >= 30:
		return Sell
	default:
		return StrongSell
	}
}

// confidence derives the reliability tier from article count and the
// consistency component jointly, so a recommendation driven by near-zero
// coverage can never report high confidence.
func (e *Engine) confidence(articleCount int, consistency float64) Confidence {
	switch {
	case articleCount >= e.cfg.HighConfidenceArticles && consistency >= e.cfg.HighConfidenceConsistency:
		return ConfidenceHigh
	case articleCount < e.cfg.LowConfidenceArticles || consistency < 0.0:
		return ConfidenceLow
	default:
		return ConfidenceMedium
	}
}
