package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	docedit "github.com/ANURAGGGGGGGGGGGG/document-editor"
)

func main() {
	var (
		inputFile   string
		outputFile  string
		previewFile string
		scriptFile  string
		title       string
		fontSize    float64
		verbose     bool
	)

	flag.StringVar(&inputFile, "input", "", "Input HTML or markdown file path or URL")
	flag.StringVar(&outputFile, "output", "", "Output PDF file path")
	flag.StringVar(&previewFile, "preview", "", "Optional preview PNG file path")
	flag.StringVar(&scriptFile, "script", "", "Optional script file to run against the document")
	flag.StringVar(&title, "title", "", "Document title for the PDF metadata")
	flag.Float64Var(&fontSize, "font-size", 0, "Base font size in pixels")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	if inputFile == "" {
		fmt.Println("Error: input file is required")
		flag.Usage()
		os.Exit(1)
	}

	if outputFile == "" {
		ext := filepath.Ext(inputFile)
		outputFile = inputFile[:len(inputFile)-len(ext)] + ".pdf"
	}

	opts := docedit.DefaultOptions()
	if title != "" {
		docedit.WithTitle(title)(&opts)
	}
	if fontSize > 0 {
		docedit.WithFontSize(fontSize)(&opts)
	}
	if verbose {
		docedit.WithDebug(true)(&opts)
	}

	editor := docedit.NewWithOptions(opts)
	defer editor.Close()

	if err := editor.LoadFile(inputFile); err != nil {
		fmt.Printf("Error loading document: %v\n", err)
		os.Exit(1)
	}

	if scriptFile != "" {
		script, err := os.ReadFile(scriptFile)
		if err != nil {
			fmt.Printf("Error reading script: %v\n", err)
			os.Exit(1)
		}
		if _, err := editor.RunScript(context.Background(), string(script)); err != nil {
			fmt.Printf("Error running script: %v\n", err)
			os.Exit(1)
		}
	}

	if err := editor.ExportPDF(outputFile); err != nil {
		fmt.Printf("Error exporting PDF: %v\n", err)
		os.Exit(1)
	}

	if previewFile != "" {
		if err := editor.RenderPreview(previewFile); err != nil {
			fmt.Printf("Error rendering preview: %v\n", err)
			os.Exit(1)
		}
	}

	if verbose {
		if pages, err := editor.PDFPageCount(); err == nil {
			fmt.Printf("Exported %d page(s)\n", pages)
		}
		fmt.Printf("Successfully exported %s to %s\n", inputFile, outputFile)
	}
}
