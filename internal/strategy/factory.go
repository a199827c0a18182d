package strategy

import "fmt"

// FromConfig builds a strategy from a config/request name and parameter
// map. Unknown names are a configuration error.
func FromConfig(name string, params map[string]any) (Strategy, error) {
	switch name {
	case "mortgage_focus":
		return MortgageFocusStrategy{}, nil
	case "investment_focus":
		return InvestmentFocusStrategy{}, nil
	case "blended":
		share := 0.5
		if v, ok := getNumber(params, "principal_share"); ok {
			share = v
		}
		if share < 0 || share > 1 {
			return nil, fmt.Errorf("blended: principal_share must be in [0,1], got %v", share)
		}
		return BlendedStrategy{PrincipalShare: share}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// Names lists the registered strategy names.
func Names() []string {
	return []string{"mortgage_focus", "investment_focus", "blended"}
}

func getNumber(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
