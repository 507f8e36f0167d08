package services

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/gophsession/internal/client/client"
)

// ---- fake api client ----

type call struct {
	Method string
	Path   string
	Body   any
	Bearer string
}

type fakeAPI struct {
	Responses map[string]client.Envelope
	Calls     []call
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{Responses: map[string]client.Envelope{}}
}

func (f *fakeAPI) record(method, path string, body any, opts []client.RequestOption) client.Envelope {
	f.Calls = append(f.Calls, call{
		Method: method,
		Path:   path,
		Body:   body,
		Bearer: client.ResolveOptions(opts...).Bearer,
	})
	if env, ok := f.Responses[path]; ok {
		return env
	}
	return client.Envelope{Status: 404, Error: json.RawMessage(`{"detail":"not found"}`)}
}

func (f *fakeAPI) Get(ctx context.Context, path string, opts ...client.RequestOption) client.Envelope {
	return f.record("GET", path, nil, opts)
}

func (f *fakeAPI) Post(ctx context.Context, path string, body any, opts ...client.RequestOption) client.Envelope {
	return f.record("POST", path, body, opts)
}

// ---- fake session store ----

type fakeSession struct {
	Resets int
}

func (f *fakeSession) Reset() { f.Resets++ }
