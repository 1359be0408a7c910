package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.lsp.dev/jsonrpc2"

	"github.com/edittools/strucdiff"
	"github.com/edittools/strucdiff/canon"
	"github.com/edittools/strucdiff/encode"
	"github.com/edittools/strucdiff/format"
	"github.com/edittools/strucdiff/parse"
	"github.com/edittools/strucdiff/render"
)

const (
	MethodCompare = "strucdiff/compare"
	MethodConvert = "strucdiff/convert"
	MethodPing    = "strucdiff/ping"
)

type CompareParams struct {
	A    string `json:"a"`
	B    string `json:"b"`
	Kind string `json:"kind"`
	Mode string `json:"mode,omitempty"`

	// Row options, used when Kind is csv.
	IgnoreHeader  bool   `json:"ignoreHeader,omitempty"`
	KeepEmptyRows bool   `json:"keepEmptyRows,omitempty"`
	Where         string `json:"where,omitempty"`
}

type CompareResult struct {
	Records []*strucdiff.Record `json:"records"`
	Stats   *render.Stats       `json:"stats"`
	Equal   bool                `json:"equal"`
}

type ConvertParams struct {
	Text string `json:"text"`
	From string `json:"from"`
	To   string `json:"to"`
}

type ConvertResult struct {
	Text string `json:"text"`
}

// Handler dispatches the strucdiff/* methods. Every request does its
// own parse and compare with private state, so concurrent sessions
// need no locking here.
func (s *Server) Handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		s.Spec.Log.Debug("rpc request", "method", req.Method())
		switch req.Method() {
		case MethodPing:
			return reply(ctx, "pong", nil)
		case MethodCompare:
			var params CompareParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err))
			}
			res, err := s.compare(&params)
			return reply(ctx, res, err)
		case MethodConvert:
			var params ConvertParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err))
			}
			res, err := s.convert(&params)
			return reply(ctx, res, err)
		default:
			return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
		}
	}
}

func (s *Server) compare(p *CompareParams) (*CompareResult, error) {
	f, err := format.ParseFormat(p.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidParams, err)
	}
	opts := []strucdiff.CompareOpt{strucdiff.WithMode(canon.ModeOf(p.Mode))}
	if p.IgnoreHeader {
		opts = append(opts, strucdiff.IgnoreHeader(true))
	}
	if p.KeepEmptyRows {
		opts = append(opts, strucdiff.IgnoreEmptyRows(false))
	}
	if p.Where != "" {
		opts = append(opts, strucdiff.Where(p.Where))
	}
	seq, err := strucdiff.Compare(p.A, p.B, f, opts...)
	if err != nil {
		// Malformed documents and bad options are the caller's to
		// fix; the error text names the side or option.
		return nil, fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidParams, err)
	}
	res := &CompareResult{
		Records: []*strucdiff.Record{},
		Stats:   render.NewStats(),
	}
	for {
		rec, ok := seq.Next()
		if !ok {
			break
		}
		res.Stats.Add(rec.Kind)
		res.Records = append(res.Records, rec)
	}
	res.Equal = len(res.Records) == 0
	s.Spec.Log.Info("compared", "kind", p.Kind, "records", len(res.Records))
	return res, nil
}

func (s *Server) convert(p *ConvertParams) (*ConvertResult, error) {
	from, err := format.ParseFormat(p.From)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidParams, err)
	}
	to, err := format.ParseFormat(p.To)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidParams, err)
	}
	node, err := parse.Parse([]byte(p.Text), parse.WithFormat(from))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidParams, err)
	}
	var sb strings.Builder
	if err := encode.Encode(node, &sb, encode.EncodeFormat(to)); err != nil {
		return nil, fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidParams, err)
	}
	return &ConvertResult{Text: sb.String()}, nil
}
