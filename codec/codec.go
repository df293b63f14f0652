// Package codec converts cached values to and from the bytes a backend stores.
//
// JSON is the default used by nscache. Binary codecs (Msgpack, CBOR, Protobuf)
// produce arbitrary bytes; wrap them in Base64 when the backend only carries
// printable text.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
