package sandwichjson

import (
	"io"
	"runtime"

	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"
)

const UseSonic = runtime.GOARCH == "amd64" && runtime.GOOS == "linux"

// Document decoders keep numbers as json.Number so integers and identifiers
// are never rounded through float64.
var (
	sonicDocument = sonic.Config{
		UseNumber: true,
	}.Froze()

	jsoniterDocument = jsoniter.Config{
		EscapeHTML: true,
		UseNumber:  true,
	}.Froze()
)

func Unmarshal(data []byte, v any) error {
	if UseSonic {
		return sonic.Unmarshal(data, v)
	} else {
		return jsoniter.Unmarshal(data, v)
	}
}

// UnmarshalDocument parses data into an untyped tree of map[string]any,
// []any, string, json.Number, bool and nil.
func UnmarshalDocument(data []byte) (any, error) {
	var document any

	var err error
	if UseSonic {
		err = sonicDocument.Unmarshal(data, &document)
	} else {
		err = jsoniterDocument.Unmarshal(data, &document)
	}

	if err != nil {
		return nil, err
	}

	return document, nil
}

func Marshal(v any) ([]byte, error) {
	if UseSonic {
		return sonic.Marshal(v)
	} else {
		return jsoniter.Marshal(v)
	}
}

func MarshalToWriter(writer io.Writer, v any) error {
	if UseSonic {
		return sonic.ConfigDefault.NewEncoder(writer).Encode(v)
	} else {
		return jsoniter.NewEncoder(writer).Encode(v)
	}
}

func Valid(data []byte) bool {
	if UseSonic {
		return sonic.Valid(data)
	} else {
		return jsoniter.Valid(data)
	}
}
