package model

// Decision is a categorical trading label emitted per row per calculator.
type Decision string

const (
	// DecisionWait means the calculator had insufficient history or an
	// undefined input at this row. Distinct from DecisionNeutral, which
	// means the data was there but carried no directional signal.
	DecisionWait Decision = "Attendre"

	DecisionBuy     Decision = "Achat"
	DecisionSell    Decision = "Vente"
	DecisionNeutral Decision = "Neutre"

	// Strong variants mark a crossing event (MACD zero line, %K/%D).
	DecisionStrongBuy  Decision = "Achat (Fort)"
	DecisionStrongSell Decision = "Vente (Fort)"

	// Stochastic-only residence labels.
	DecisionOverbought Decision = "Surachat"
	DecisionOversold   Decision = "Survente"
)
