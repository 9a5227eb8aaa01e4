/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"github.com/provisio/azure-template-validator/pkg/cli"
)

func main() {
	cli.Execute()
}
