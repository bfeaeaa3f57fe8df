package market

const (
	// DefaultPropertySize matches the reference employer's land
	// holding.
	DefaultPropertySize = 1000.0

	outputPerProperty = 1_000_000.0
	laborCostShare    = 0.4
	outputPerWorker   = 3_500_000.0
	overheadShare     = 0.1
)

// Employer hires against a land budget: at most 40% of base output
// goes to wages. Profit is production minus wages minus a 10%
// production overhead.
type Employer struct {
	ID           string
	PropertySize float64
	Hired        int
}

func NewEmployer(id string, propertySize float64) *Employer {
	return &Employer{ID: id, PropertySize: propertySize}
}

// OptimalHeadcount is the profit-maximizing number of hires at the
// given wage, never less than one.
func (e *Employer) OptimalHeadcount(wage float64) int {
	if wage <= 0 {
		return 1
	}
	base := e.PropertySize * outputPerProperty
	n := int(base * laborCostShare / wage)
	if n < 1 {
		n = 1
	}
	return n
}

// Profit is the expected surplus of employing headcount workers at
// the given wage. Competition widens the market, so output per worker
// scales with it.
func (e *Employer) Profit(wage float64, headcount int, competition float64) float64 {
	production := outputPerWorker * (1 + competition) * float64(headcount)
	cost := wage*float64(headcount) + production*overheadShare
	return production - cost
}

// WouldHire is the marginal hiring decision for a single worker at
// their asking wage.
func (e *Employer) WouldHire(w *Worker, offer, competition float64) bool {
	return e.Profit(offer, 1, competition) > 0 && w.Efficiency >= MinHireEfficiency
}
