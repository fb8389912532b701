// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/leonimella/bondd/fault"
)

// CanonicalIPandPort - make the IP:Port canonical
//
// examples:
//
//	IPv4:  127.0.0.1:1234
//	IPv6:  [::1]:1234
func CanonicalIPandPort(hostPort string) (string, error) {

	host, port, _ := net.SplitHostPort(strings.TrimSpace(hostPort))

	IP := net.ParseIP(strings.TrimSpace(host))
	if nil == IP {
		return "", fault.ErrInvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err || numericPort < 1 || numericPort > 65535 {
		return "", fault.ErrInvalidPortNumber
	}

	if nil != IP.To4() {
		return IP.String() + ":" + strconv.Itoa(numericPort), nil
	}
	return "[" + IP.String() + "]:" + strconv.Itoa(numericPort), nil
}

// ListenAddress - split a listen specification into network and address
//
// "*:PORT" listens on both tcp4 and tcp6
func ListenAddress(listen string) (string, string, error) {
	listen = strings.TrimSpace(listen)
	if strings.HasPrefix(listen, "*:") {
		canonical, err := CanonicalIPandPort("[::]" + listen[1:])
		if nil != err {
			return "", "", err
		}
		return "tcp", canonical, nil
	}

	canonical, err := CanonicalIPandPort(listen)
	if nil != err {
		return "", "", err
	}
	if '[' == canonical[0] {
		return "tcp6", canonical, nil
	}
	return "tcp4", canonical, nil
}
