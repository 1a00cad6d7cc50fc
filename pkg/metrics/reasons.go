package metrics

// Draw error reasons used as the "reason" label of draw_errors_total.
const (
	ReasonSource   = "source"
	ReasonCanceled = "canceled"
	ReasonBounds   = "bounds"
)
