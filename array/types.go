package array

// Arrays of the built-in element types.
type (
	IntArray    = Array[int]
	FloatArray  = Array[float32]
	CharArray   = Array[byte]
	StringArray = Array[string]
)
