// Package main provides the ndview CLI: it renders tensors through the view
// algebra and cross-checks products against gonum.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/ndview/internal/backend/cpu"
	"github.com/born-ml/ndview/internal/interop"
	"github.com/born-ml/ndview/internal/tensor"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("ndview %s\n", version)
	case "show":
		runShow(os.Args[2:])
	case "dot":
		runDot(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("ndview - strided tensor views")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  show       Fill a tensor with 0, 1, 2, ... and print it after a view operation")
	fmt.Println("  dot        Multiply two iota matrices and compare with gonum")
}

func runShow(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	shapeFlag := fs.String("shape", "2,3,4", "Comma separated shape of the source tensor")
	transpose := fs.String("transpose", "", "Permutation to apply, e.g. 1,0,2")
	reshape := fs.String("reshape", "", "Target shape; -1 marks the inferred dimension")
	broadcast := fs.String("broadcast", "", "Shape to broadcast to")
	width := fs.Int("width", 3, "Minimum width of each rendered element")
	precision := fs.Int("precision", -1, "Digits after the decimal point (-1 = shortest)")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("Failed to parse flags: %v", err)
	}

	shape, err := parseInts(*shapeFlag)
	if err != nil {
		log.Fatalf("Invalid -shape: %v", err)
	}

	backend := cpu.New()
	x, err := tensor.New[float64](tensor.Shape(shape), backend)
	if err != nil {
		log.Fatalf("Failed to create tensor: %v", err)
	}
	tensor.Iota(x, 0, 1)

	if *transpose != "" {
		order, err := parseInts(*transpose)
		if err != nil {
			log.Fatalf("Invalid -transpose: %v", err)
		}
		if x, err = tensor.Transpose(x, tensor.Indices(order)); err != nil {
			log.Fatalf("Transpose failed: %v", err)
		}
	}
	if *reshape != "" {
		target, err := parseInts(*reshape)
		if err != nil {
			log.Fatalf("Invalid -reshape: %v", err)
		}
		if x, err = tensor.Reshape(x, tensor.Shape(target)); err != nil {
			log.Fatalf("Reshape failed: %v", err)
		}
	}
	if *broadcast != "" {
		target, err := parseInts(*broadcast)
		if err != nil {
			log.Fatalf("Invalid -broadcast: %v", err)
		}
		if x, err = tensor.BroadcastTo(x, tensor.Shape(target)); err != nil {
			log.Fatalf("Broadcast failed: %v", err)
		}
	}

	v := x.View()
	fmt.Printf("shape:   %v\n", v.Shape)
	fmt.Printf("strides: %v\n", v.Strides)
	fmt.Printf("offset:  %v\n", v.Offset)
	fmt.Printf("order:   %v (contiguous: %t)\n\n", v.Order, v.Contiguous())
	fmt.Println(tensor.Format(x, tensor.FormatConfig{Width: *width, Precision: *precision}))
}

func runDot(args []string) {
	fs := flag.NewFlagSet("dot", flag.ExitOnError)
	m := fs.Int("m", 4, "Rows of the left operand")
	k := fs.Int("k", 3, "Inner dimension")
	n := fs.Int("n", 4, "Columns of the right operand")
	check := fs.Bool("check", true, "Compare the result with gonum's Dense product")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("Failed to parse flags: %v", err)
	}

	backend := cpu.New()
	a, err := tensor.New[float64](tensor.Shape{*m, *k}, backend)
	if err != nil {
		log.Fatalf("Failed to create lhs: %v", err)
	}
	tensor.Iota(a, 0, 1)
	b, err := tensor.New[float64](tensor.Shape{*k, *n}, backend)
	if err != nil {
		log.Fatalf("Failed to create rhs: %v", err)
	}
	tensor.Iota(b, 0, 1)

	c, err := tensor.Dot(a, b)
	if err != nil {
		log.Fatalf("Dot failed: %v", err)
	}
	fmt.Println(c)

	if !*check {
		return
	}
	want, err := interop.MatMul(a, b)
	if err != nil {
		log.Fatalf("gonum product failed: %v", err)
	}
	if !tensor.Equals(c, want) {
		fmt.Println("\nMISMATCH against gonum:")
		fmt.Println(want)
		os.Exit(1)
	}
	fmt.Println("\nmatches gonum")
}

// parseInts parses a comma separated list such as "2,3,4".
func parseInts(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}
