// Command spawndemo launches ten copies of itself as child processes and
// waits for all of them, printing each child's index and pid.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"
)

const childFlag = "-child"

func main() {
	if len(os.Args) == 3 && os.Args[1] == childFlag {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("I'm the child number %d (pid %d)\n", n, os.Getpid())
		time.Sleep(3 * time.Second)
		return
	}

	self, err := os.Executable()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	children := make([]*exec.Cmd, 0, 10)
	for i := 0; i < 10; i++ {
		cmd := exec.Command(self, childFlag, strconv.Itoa(i))
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Start(); err != nil {
			fmt.Fprintln(os.Stderr, "spawn failed:", err)
			os.Exit(1)
		}
		children = append(children, cmd)
	}

	for _, cmd := range children {
		if err := cmd.Wait(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	fmt.Printf("Parent terminates (pid %d)\n", os.Getpid())
}
