// SPDX-License-Identifier: EPL-2.0

package main

import (
	"log"
	"os"

	"github.com/ik5/mediasim"
)

func main() {
	if err := mediasim.Run(os.Stdout, mediasim.DefaultConfig()); err != nil {
		log.Fatalf("mediasim: %v", err)
	}
}
