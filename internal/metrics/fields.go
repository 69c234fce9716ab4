package metrics

// Attribute keys shared by the otel instruments.
const (
	AttrLeague = "league"
	AttrMode   = "mode"
	AttrKind   = "kind"
)
