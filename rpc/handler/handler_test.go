// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/rpc"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/leonimella/bondd/fixtures"
	"github.com/leonimella/bondd/metrics"
	"github.com/leonimella/bondd/rpc/handler"
)

const (
	notAllowed      = "method not allowed"
	tooManyRequests = "Too Many Requests"
)

type eResp struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type jResp struct {
	ID     int         `json:"id"`
	Result int         `json:"result"`
	Error  interface{} `json:"error"`
}

type jReq struct {
	ID     int      `json:"id"`
	Method string   `json:"method"`
	Params []AddArg `json:"params"`
}

type Add struct{}
type AddArg struct {
	A int `json:"A"`
	B int `json:"B"`
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newHandler(maximumConnections uint64) handler.Handler {
	s := rpc.NewServer()
	_ = s.Register(Add{})
	collector := metrics.NewCollector(nil)
	collector.SetConnections(3)
	return handler.New(
		logger.New(fixtures.LogCategory),
		s,
		collector.Handler(),
		time.Now(),
		"1.0",
		maximumConnections,
	)
}

func localAllow(h handler.Handler, names ...string) {
	allow := make(map[string][]*net.IPNet)
	_, ipNet, _ := net.ParseCIDR("192.0.2.1/32") // httptest remote address
	for _, name := range names {
		allow[name] = []*net.IPNet{ipNet}
	}
	h.SetAllow(allow)
}

func decodeError(t *testing.T, resp *http.Response) eResp {
	var j eResp
	err := json.NewDecoder(resp.Body).Decode(&j)
	assert.Nil(t, err, "decode error body")
	return j
}

func TestRoot(t *testing.T) {
	h := newHandler(5)

	req := httptest.NewRequest("GET", "http://not.found", nil)
	w := httptest.NewRecorder()
	h.Root(w, req)

	j := decodeError(t, w.Result())
	assert.Equal(t, "not found", j.Error, "wrong response")
	assert.Equal(t, http.StatusNotFound, j.Code, "wrong http code")
}

func TestRPC(t *testing.T) {
	h := newHandler(5)

	add := AddArg{
		A: 1,
		B: 2,
	}
	data, _ := json.Marshal(jReq{
		ID:     5,
		Method: "Add.Add",
		Params: []AddArg{add},
	})

	req := httptest.NewRequest("POST", "http://not.exist", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.RPC(w, req)

	resp := w.Result()
	var j jResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, 5, j.ID, "wrong id")
	assert.Equal(t, add.A+add.B, j.Result, "wrong result")
	assert.Nil(t, j.Error, "wrong error")
}

func TestRPCWhenWrongHTTPMethod(t *testing.T) {
	h := newHandler(5)

	req := httptest.NewRequest("GET", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.RPC(w, req)

	j := decodeError(t, w.Result())
	assert.Equal(t, notAllowed, j.Error, "wrong method")
}

func TestRPCWhenTooManyConnections(t *testing.T) {
	h := newHandler(0)

	req := httptest.NewRequest("POST", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.RPC(w, req)

	j := decodeError(t, w.Result())
	assert.Equal(t, tooManyRequests, j.Error, "wrong error")
	assert.Equal(t, http.StatusTooManyRequests, j.Code, "wrong code")
}

func TestRPCWhenServeError(t *testing.T) {
	h := newHandler(5)

	data, _ := json.Marshal(jReq{})

	req := httptest.NewRequest("POST", "http://not.exist", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.RPC(w, req)

	b, _ := io.ReadAll(w.Result().Body)
	assert.Contains(t, string(b), "internal server error", "wrong response")
}

func TestDetails(t *testing.T) {
	h := newHandler(5)
	localAllow(h, "details")

	req := httptest.NewRequest("GET", "http://test.com", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")

	var reply struct {
		Version string `json:"version"`
		Uptime  string `json:"uptime"`
		RPCs    uint64 `json:"rpcs"`
	}
	err := json.NewDecoder(resp.Body).Decode(&reply)
	assert.Nil(t, err, "decode")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, uint64(1), reply.RPCs, "wrong count")
}

func TestDetailsWhenNotAllow(t *testing.T) {
	h := newHandler(5)

	req := httptest.NewRequest("GET", "http://test.com", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	j := decodeError(t, w.Result())
	assert.Equal(t, "forbidden", j.Error, "wrong not allow")
}

func TestDetailsWhenWrongHTTPMethod(t *testing.T) {
	h := newHandler(5)
	localAllow(h, "details")

	req := httptest.NewRequest("POST", "http://test.com", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	j := decodeError(t, w.Result())
	assert.Equal(t, notAllowed, j.Error, "wrong method")
}

func TestMetrics(t *testing.T) {
	h := newHandler(5)
	localAllow(h, "metrics")

	req := httptest.NewRequest("GET", "http://test.com/bondd/metrics", nil)
	w := httptest.NewRecorder()
	h.Metrics(w, req)

	resp := w.Result()
	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Contains(t, string(b), "bondd_rpc_connections 3", "missing gauge")
}

func TestMetricsWhenNotAllow(t *testing.T) {
	h := newHandler(5)
	localAllow(h, "details")

	req := httptest.NewRequest("GET", "http://test.com/bondd/metrics", nil)
	w := httptest.NewRecorder()
	h.Metrics(w, req)

	j := decodeError(t, w.Result())
	assert.Equal(t, "forbidden", j.Error, "wrong not allow")
}
