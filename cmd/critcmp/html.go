// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

var htmlHeader = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<style>
.critcmp { border-collapse: collapse; font-family: monospace; }
.critcmp th, .critcmp td { padding: 0.15em 0.6em; text-align: right; }
.critcmp th:first-child, .critcmp td:first-child { text-align: left; }
.critcmp tr.configs th { border-bottom: 1px solid #666; }
.critcmp tr.summary td { border-top: 1px solid #666; font-weight: bold; }
</style>
</head>
<body>
`

var htmlFooter = `</body>
</html>
`
