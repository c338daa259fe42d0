package report

import (
	"sync"

	"fleetledger/internal/domain"
)

// Invalidator is an explicit dependency registry: report consumers
// subscribe to the (vehicle, record kind) pairs they depend on, and
// every create/update/delete on a dependency notifies them. Replaces
// ambient cache keys with a declared subscription list.
type Invalidator struct {
	mu   sync.Mutex
	next int
	subs map[subKey]map[int]func()
}

type subKey struct {
	VehicleID string // "" subscribes to every vehicle
	Kind      domain.RecordKind
}

func NewInvalidator() *Invalidator {
	return &Invalidator{subs: map[subKey]map[int]func(){}}
}

// Subscribe registers fn for mutations of kind on vehicleID. An empty
// vehicleID matches all vehicles. The returned cancel removes the
// subscription.
func (inv *Invalidator) Subscribe(vehicleID string, kind domain.RecordKind, fn func()) (cancel func()) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	key := subKey{VehicleID: vehicleID, Kind: kind}
	if inv.subs[key] == nil {
		inv.subs[key] = map[int]func(){}
	}
	id := inv.next
	inv.next++
	inv.subs[key][id] = fn

	return func() {
		inv.mu.Lock()
		defer inv.mu.Unlock()
		delete(inv.subs[key], id)
	}
}

// Notify fires every subscription matching (vehicleID, kind), including
// all-vehicle subscribers. Callbacks run outside the registry lock.
func (inv *Invalidator) Notify(vehicleID string, kind domain.RecordKind) {
	inv.mu.Lock()
	var fns []func()
	for _, fn := range inv.subs[subKey{VehicleID: vehicleID, Kind: kind}] {
		fns = append(fns, fn)
	}
	if vehicleID != "" {
		for _, fn := range inv.subs[subKey{VehicleID: "", Kind: kind}] {
			fns = append(fns, fn)
		}
	}
	inv.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
