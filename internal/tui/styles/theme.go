package styles

// Theme is the style set used when no configuration has been loaded.
var Theme = New(nil)
