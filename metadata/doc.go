// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metadata - typed key/value metadata attached to bond
// classes and nonces and the redeemability rule derived from it
package metadata
