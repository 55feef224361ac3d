package ctjson

import (
	"encoding/json"
	"testing"

	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"
)

type benchPoint struct {
	Lat, Lng float64
	Name     string
}

var benchPointSchema = Register[benchPoint](
	NumberField("lat", 0),
	NumberField("lng", 1),
	StringField("name", 2),
)

const benchPointJSON = `{"lat":35.6895,"lng":139.6917,"name":"Tokyo"}`

func BenchmarkCtjsonPoint(b *testing.B) {
	msg := []byte(benchPointJSON)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FromJSON[benchPoint](msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSonicPoint(b *testing.B) {
	msg := []byte(benchPointJSON)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	var out benchPoint
	for i := 0; i < b.N; i++ {
		if err := sonic.Unmarshal(msg, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkJsoniterPoint(b *testing.B) {
	msg := []byte(benchPointJSON)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	var cfg = jsoniter.ConfigCompatibleWithStandardLibrary
	var out benchPoint
	for i := 0; i < b.N; i++ {
		if err := cfg.Unmarshal(msg, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodingJSONPoint(b *testing.B) {
	msg := []byte(benchPointJSON)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	var out benchPoint
	for i := 0; i < b.N; i++ {
		if err := json.Unmarshal(msg, &out); err != nil {
			b.Fatal(err)
		}
	}
}
