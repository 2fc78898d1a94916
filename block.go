// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package umi

// BlockHeader is an empty placeholder. Its layout is not defined by this
// core and must be specified separately before any block-level code is
// built on top of it.
type BlockHeader struct{}

// Block is an empty placeholder. Its layout is not defined by this core
// and must be specified separately before any block-level code is built
// on top of it.
type Block struct{}
