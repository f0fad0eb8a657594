package ready

import (
	"time"
)

// Decoder decodes Ready events against a fixed schema and records each
// outcome when Metrics is set.
type Decoder struct {
	Metrics *Metrics
	Schema  SchemaVersion
}

func NewDecoder(version SchemaVersion, metrics *Metrics) Decoder {
	return Decoder{Schema: version, Metrics: metrics}
}

func (d Decoder) Decode(node any) (Payload, error) {
	started := time.Now()
	payload, err := Decode(d.Schema, node)
	d.Metrics.Observe(d.Schema, started, payload, err)

	return payload, err
}

func (d Decoder) DecodeBytes(data []byte) (Payload, error) {
	started := time.Now()
	payload, err := DecodeBytes(d.Schema, data)
	d.Metrics.Observe(d.Schema, started, payload, err)

	return payload, err
}

func (d Decoder) DecodeDispatch(data []byte) (Payload, error) {
	started := time.Now()
	payload, err := DecodeDispatch(d.Schema, data)
	d.Metrics.Observe(d.Schema, started, payload, err)

	return payload, err
}
