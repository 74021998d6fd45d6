package fishtrace

// Defaults applied when the config leaves a field unset.
const (
	RenderSize  = 512
	Supersample = 2
	WebPOut     = "rays.webp"
	// numeric guards reused across the solver
	dirEps = 1e-12 // minimum usable direction magnitude
	detEps = 1e-9  // below this the normal system is treated as singular
)
