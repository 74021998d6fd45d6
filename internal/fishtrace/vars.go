package fishtrace

var (
	Debug    = false // set to true for verbose debug output
	NoRender = false // set to true to skip the diagnostic WebP render
)
