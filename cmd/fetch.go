package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/gqlc/graphql-markdown/introspection"
	"go.uber.org/zap"
)

type gqlReq struct {
	Query string `json:"query"`
}

type fetchClient struct {
	*http.Client

	dialer *websocket.Dialer
}

// fetch retrieves a remote file.
func (c *fetchClient) fetch(ctx context.Context, u *url.URL, headers http.Header) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	addHeaders(req, headers)

	zap.L().Info("fetching remote file", zap.String("name", u.String()), zap.Any("headers", headers))
	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	if err = checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

// introspect runs the introspection query against a GraphQL endpoint.
func (c *fetchClient) introspect(ctx context.Context, endpoint *url.URL, headers http.Header) (*introspection.Schema, error) {
	zap.L().Info("fetching types via introspection", zap.String("endpoint", endpoint.String()), zap.Any("headers", headers))

	switch endpoint.Scheme {
	case "http", "https":
		return c.introspectHTTP(ctx, endpoint, headers)
	case "ws", "wss":
		return c.introspectWS(ctx, endpoint, headers)
	default:
		return nil, fmt.Errorf("graphql-markdown: unsupported introspection scheme: %s", endpoint.Scheme)
	}
}

func (c *fetchClient) introspectHTTP(ctx context.Context, endpoint *url.URL, headers http.Header) (*introspection.Schema, error) {
	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(gqlReq{Query: introspection.Query}); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), &body)
	if err != nil {
		return nil, err
	}
	addHeaders(req, headers)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err = checkStatus(resp); err != nil {
		return nil, err
	}
	return introspection.Decode(resp.Body)
}

func addHeaders(req *http.Request, headers http.Header) {
	for k, v := range headers {
		for _, s := range v {
			req.Header.Add(k, s)
		}
	}
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("graphql-markdown: unexpected response from %s: %s", resp.Request.URL, resp.Status)
}

// Websocket subprotocols: subscriptions-transport-ws and its successor, graphql-ws.
const (
	protocolGraphQLWS        = "graphql-ws"
	protocolGraphQLTransport = "graphql-transport-ws"
)

type wsMessage struct {
	Type    string          `json:"type"`
	ID      string          `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

const introspectionID = "1"

// introspectWS runs the introspection query over a websocket, speaking
// whichever subprotocol the server selects.
func (c *fetchClient) introspectWS(ctx context.Context, endpoint *url.URL, headers http.Header) (*introspection.Schema, error) {
	d := *c.dialer
	d.Subprotocols = []string{protocolGraphQLTransport, protocolGraphQLWS}

	conn, resp, err := d.DialContext(ctx, endpoint.String(), headers)
	if err != nil {
		return nil, err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
	}

	newProtocol := conn.Subprotocol() == protocolGraphQLTransport
	startType, dataType, stopType := "start", "data", "stop"
	if newProtocol {
		startType, dataType, stopType = "subscribe", "next", "complete"
	}

	if err = conn.WriteJSON(wsMessage{Type: "connection_init"}); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(gqlReq{Query: introspection.Query})
	if err != nil {
		return nil, err
	}

	var started bool
	for {
		_, b, err := conn.ReadMessage()
		if err != nil {
			return nil, err
		}

		var msg wsMessage
		if err = json.Unmarshal(b, &msg); err != nil {
			zap.L().Debug("skipping malformed websocket message", zap.ByteString("message", b))
			continue
		}
		zap.L().Debug("received websocket message", zap.String("type", msg.Type), zap.String("id", msg.ID))

		switch msg.Type {
		case "connection_ack":
			if started {
				continue
			}
			err = conn.WriteJSON(wsMessage{Type: startType, ID: introspectionID, Payload: payload})
			if err != nil {
				return nil, err
			}
			started = true
		case "ka":
		case "ping":
			if err = conn.WriteJSON(wsMessage{Type: "pong"}); err != nil {
				return nil, err
			}
		case dataType:
			if msg.ID != introspectionID {
				continue
			}

			s, err := introspection.DecodeBytes(msg.Payload)
			if err != nil {
				return nil, err
			}

			_ = conn.WriteJSON(wsMessage{Type: stopType, ID: introspectionID})
			if !newProtocol {
				_ = conn.WriteJSON(wsMessage{Type: "connection_terminate"})
			}
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return s, nil
		case "error", "connection_error":
			return nil, fmt.Errorf("graphql-markdown: introspection failed: %s", msg.Payload)
		case "complete":
			return nil, errors.New("graphql-markdown: introspection completed without a result")
		}
	}
}
