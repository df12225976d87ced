package generator

import "math/rand"

// tenantHistory is a fixed-capacity ring buffer over the tenant ids of the
// most recent bookings. The repeat-guest draw samples it uniformly, so a
// guest who booked recently is more likely to book again.
type tenantHistory struct {
	buf  []int
	next int
	size int
}

func newTenantHistory(capacity int) *tenantHistory {
	return &tenantHistory{buf: make([]int, capacity)}
}

func (h *tenantHistory) Append(tenantID int) {
	if len(h.buf) == 0 {
		return
	}
	h.buf[h.next] = tenantID
	h.next = (h.next + 1) % len(h.buf)
	if h.size < len(h.buf) {
		h.size++
	}
}

// Sample returns a uniformly chosen tenant id from the window, or false when
// the window is empty.
func (h *tenantHistory) Sample(rng *rand.Rand) (int, bool) {
	if h.size == 0 {
		return 0, false
	}
	return h.buf[rng.Intn(h.size)], true
}

func (h *tenantHistory) Len() int { return h.size }
