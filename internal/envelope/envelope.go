// Package envelope defines the uniform response wrapper the mobile client
// expects on every request, success or failure.
package envelope

// Envelope is the canonical response body: exactly one of Data / Error is
// populated, and OK tells the client which.
type Envelope struct {
	OK    bool    `json:"ok"`
	Data  any     `json:"data"`
	Error *string `json:"error"`
}

func Success(data any) Envelope {
	return Envelope{OK: true, Data: data}
}

func Failure(msg string) Envelope {
	return Envelope{OK: false, Error: &msg}
}
