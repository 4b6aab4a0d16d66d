// Command xcglog pipes text through xcglogger destinations and rotates log
// files from the shell.
//
//	tail -f app.out | xcglog pipe --file /var/log/app.log --level info
//	xcglog rotate --file /var/log/app.log --archive /var/log/app.1.log
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
