// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/leonimella/bondd/fault"
	"github.com/leonimella/bondd/fixtures"
	"github.com/leonimella/bondd/rpc/listeners"
)

type testHandler struct {
	allow map[string][]*net.IPNet
}

func (h *testHandler) RPC(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("RPC"))
}

func (h *testHandler) Details(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Details"))
}

func (h *testHandler) Metrics(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Metrics"))
}

func (h *testHandler) Root(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Root"))
}

func (h *testHandler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

func httpsClient() *http.Client {
	customTransport := http.DefaultTransport.(*http.Transport).Clone()
	customTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // ignore certificate verification
	return &http.Client{
		Transport: customTransport,
	}
}

func TestHttpsListenerServe(t *testing.T) {
	port, listen := randomListen()
	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
		Allow: map[string][]string{
			"details": {"127.0.0.1/32"},
			"metrics": {" 127.0.0.0/8 ", "::1/128"},
		},
	}

	tlsConf, _ := serverTLS(t)
	hdlr := &testHandler{}

	h, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), tlsConf, hdlr)
	if nil != err {
		t.Fatalf("NewHTTPS with error: %s", err)
	}
	assert.Equal(t, 1, len(hdlr.allow["details"]), "wrong details allow")
	assert.Equal(t, 2, len(hdlr.allow["metrics"]), "wrong metrics allow")

	err = h.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer h.Close()

	client := httpsClient()
	url := fmt.Sprintf("https://127.0.0.1:%d/", port)
	for path, expected := range map[string]string{
		"bondd/rpc":     "RPC",
		"bondd/details": "Details",
		"bondd/metrics": "Metrics",
		"anything":      "Root",
	} {
		resp, err := client.Get(url + path)
		if nil != err {
			t.Fatalf("client get: %s with error: %s", path, err)
		}
		content, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		assert.Equal(t, expected, string(content), "wrong %s call", path)
	}
}

func TestHttpsListenerDisabled(t *testing.T) {
	tlsConf, _ := serverTLS(t)
	h, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{}, logger.New(fixtures.LogCategory), tlsConf, &testHandler{})
	assert.Nil(t, err, "wrong error")
	assert.Nil(t, h, "listener created")
}

func TestHttpsListenerWhenMaxConnectionCountTooSmall(t *testing.T) {
	_, listen := randomListen()
	tlsConf, _ := serverTLS(t)
	_, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{
		MaximumConnections: 0,
		Listen:             []string{listen},
	}, logger.New(fixtures.LogCategory), tlsConf, &testHandler{})
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestHttpsListenerWhenBadAllow(t *testing.T) {
	_, listen := randomListen()
	tlsConf, _ := serverTLS(t)
	_, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{
		MaximumConnections: 1,
		Listen:             []string{listen},
		Allow: map[string][]string{
			"details": {"127.0.0.1"},
		},
	}, logger.New(fixtures.LogCategory), tlsConf, &testHandler{})
	assert.NotNil(t, err, "plain IP accepted as CIDR")
}
