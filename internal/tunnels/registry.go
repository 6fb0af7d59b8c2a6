package tunnels

import "context"

// StateQuery enumerates the names of network interfaces currently up.
type StateQuery interface {
	ListUpInterfaces(ctx context.Context) ([]string, error)
}

// Registry cross-references persisted tunnel configurations against live
// network interface state.
type Registry struct {
	Store *Store
	State StateQuery
}

func (r *Registry) ListConfigured() ([]string, error) {
	return r.Store.List()
}

// FindActive returns the first configured tunnel name, in lexicographic
// order, that is also an up interface; empty string when none is. When
// several configured tunnels are up simultaneously only the first is
// reported — known limitation of the single-active-tunnel model.
func (r *Registry) FindActive(ctx context.Context) (string, error) {
	configured, err := r.Store.List()

	if err != nil {
		return "", err
	}

	if len(configured) == 0 {
		return "", nil
	}

	up, err := r.State.ListUpInterfaces(ctx)

	if err != nil {
		return "", err
	}

	upSet := make(map[string]struct{}, len(up))

	for _, name := range up {
		upSet[name] = struct{}{}
	}

	for _, name := range configured {
		if _, ok := upSet[name]; ok {
			return name, nil
		}
	}

	return "", nil
}
