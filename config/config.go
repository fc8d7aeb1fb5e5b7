package config

type (
	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read
		// from socket. A request line longer than the buffer is simply truncated,
		// there is no reassembly loop
		ReadBufferSize int
	}

	HTTP struct {
		// ResponseBuffPrealloc is the initial capacity of the buffer the response
		// is rendered into. The buffer grows on demand, so this is a pre-allocation
		// hint rather than a limit
		ResponseBuffPrealloc int
	}
)

// Config holds settings used across various parts of solo, mainly buffer sizing.
//
// Modify defaults (returned via Default()) instead of initializing the struct
// manually, otherwise zero values will be topped up by Fill anyway
type Config struct {
	NET  NET
	HTTP HTTP
}

func Default() Config {
	return Config{
		NET: NET{
			ReadBufferSize: 512,
		},
		HTTP: HTTP{
			ResponseBuffPrealloc: 1024,
		},
	}
}

// Fill tops up unset (zero) fields of the config with default values
func Fill(original Config) (modified Config) {
	defaultConfig := Default()

	original.NET.ReadBufferSize = customOrDefault(
		original.NET.ReadBufferSize, defaultConfig.NET.ReadBufferSize,
	)
	original.HTTP.ResponseBuffPrealloc = customOrDefault(
		original.HTTP.ResponseBuffPrealloc, defaultConfig.HTTP.ResponseBuffPrealloc,
	)

	return original
}

func customOrDefault(custom, otherwise int) int {
	if custom == 0 {
		return otherwise
	}

	return custom
}
