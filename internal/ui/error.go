package ui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	helpWidth = 80

	// Returned by usefulerror when no additional help was set.
	noAdditionalHelp = "No additional help is available for this error."
)

// ErrorExit prints the error message and exits the program with a non-zero status code.
func ErrorExit(err error) {
	usefulErr := convertToUsefulError(err)
	if usefulErr == nil {
		Fatalf("Error: unknown error")
	}

	fmt.Fprintln(os.Stderr, Colors.Red(fmt.Sprintf("Error occurred: %s", usefulErr.HumanError())))

	width := helpTextWidth(int(os.Stderr.Fd()))
	fmt.Fprintln(os.Stderr, Colors.Yellow(termWidthFormatText(usefulErr.Help(), width)))

	if additionalHelp := usefulErr.AdditionalHelp(); additionalHelp != noAdditionalHelp {
		fmt.Fprintln(os.Stderr, Colors.Dim(termWidthFormatText(additionalHelp, width)))
	}

	os.Exit(1)
}

// helpTextWidth is helpWidth, narrowed to the terminal on fd when it is one.
func helpTextWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return helpWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 || width > helpWidth {
		return helpWidth
	}

	return width
}
