package core

// Request is the envelope for one outgoing API call: method, endpoint
// path, parameter set, authentication flag, and the per-request header
// overlay. A Request is created per call, consumed by the transport, and
// discarded; headers set here never touch client-level state.
type Request struct {
	Method  string            `json:"method"`
	Path    string            `json:"path"`
	Params  Params            `json:"params,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Private bool              `json:"private"`
}

func NewRequest(method, path string) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Params:  make(Params),
		Headers: make(map[string]string),
	}
}

func (r *Request) SetParam(key string, value any) *Request {
	if r.Params == nil {
		r.Params = make(Params)
	}
	r.Params[key] = value
	return r
}

func (r *Request) SetParams(params Params) *Request {
	if r.Params == nil {
		r.Params = make(Params)
	}
	r.Params.Merge(params)
	return r
}

func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

func (r *Request) SetPrivate(private bool) *Request {
	r.Private = private
	return r
}
