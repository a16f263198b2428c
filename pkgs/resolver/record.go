package resolver

// HostRecord is the accumulated state of one alias.
type HostRecord struct {
	Alias            string
	HostnameOverride string
	Annotation       string
}

// SetHostname stores v as the hostname override unless one is already set.
// Empty values are ignored. It reports whether the record changed.
func (h *HostRecord) SetHostname(v string) bool {
	if h.HostnameOverride != "" || v == "" {
		return false
	}
	h.HostnameOverride = v
	return true
}

// SetAnnotation stores v as the annotation unless one is already set.
// Empty values are ignored. It reports whether the record changed.
func (h *HostRecord) SetAnnotation(v string) bool {
	if h.Annotation != "" || v == "" {
		return false
	}
	h.Annotation = v
	return true
}

// EffectiveHostname resolves the hostname through the fallback chain:
// the record's own override, then the global fallback, then the alias.
func (h HostRecord) EffectiveHostname(fallback string) string {
	switch {
	case h.HostnameOverride != "":
		return h.HostnameOverride
	case fallback != "":
		return fallback
	default:
		return h.Alias
	}
}
