// Command timecast is a one-second-tick TCP time broadcaster and its client.
//
// "timecast serve" accepts connections and sends each client the local time,
// formatted as "2006-01-02 15:04:05\n", once per second until the client
// goes away. "timecast watch" connects and streams the lines to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"time"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "serve":
		serveCmd(os.Args[2:])
	case "watch":
		watchCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  timecast serve [-addr :6013]")
	fmt.Fprintln(os.Stderr, "  timecast watch [-addr 127.0.0.1:6013]")
}

func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":6013", "listen address")
	_ = fs.Parse(args)

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Server started on %s. Waiting for connections...\n", ln.Addr())

	for {
		conn, err := ln.Accept()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		go broadcast(conn)
	}
}

// broadcast sends the local time to one client once per second until a
// write fails.
func broadcast(conn net.Conn) {
	defer conn.Close()
	fmt.Printf("Client connected from %s\n", conn.RemoteAddr())

	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	for now := range tick.C {
		line := now.Format("2006-01-02 15:04:05") + "\n"
		if _, err := conn.Write([]byte(line)); err != nil {
			fmt.Printf("Client %s disconnected\n", conn.RemoteAddr())
			return
		}
	}
}

func watchCmd(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	addr := fs.String("addr", "127.0.0.1:6013", "server address")
	_ = fs.Parse(args)

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer conn.Close()

	if _, err := io.Copy(os.Stdout, conn); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
