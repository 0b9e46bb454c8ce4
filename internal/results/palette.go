package results

// Palette is the cyclic list of plot colors handed to ingested files.
var Palette = []string{"red", "blue", "green", "purple", "orange", "brown", "pink", "cyan"}

// ColorFor returns the color of the n-th ingested file, counting from 0.
func ColorFor(n int) string {
	return Palette[n%len(Palette)]
}
