// Command inspect prints how a skin file classifies and where each
// part's atlas regions land, for debugging custom or malformed skins.
package main

import (
	"flag"
	"fmt"
	"os"

	"mc-skin-renderer/internal/atlas"
	"mc-skin-renderer/internal/skin"
	"mc-skin-renderer/internal/texture"
)

func main() {
	variant := flag.String("variant", "steve", "Model variant: steve or alex")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: inspect [-variant steve|alex] <skin-file>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	v, err := atlas.ParseVariant(*variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	im, err := texture.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %dx%d scale=%d legacy=%v alphaCapable=%v\n",
		path, im.Width(), im.Height(), im.Scale(), im.Legacy(), im.AlphaCapable)
	if err := skin.ValidateSkin(im); err != nil {
		fmt.Printf("  skin contract: REJECTED (%v)\n", err)
	} else {
		fmt.Printf("  skin contract: ok\n")
	}

	scale := im.Scale()
	for p := atlas.Part(0); p < atlas.PartCount; p++ {
		if p == atlas.PartCape {
			continue
		}
		fmt.Printf("%s (%s):\n", p, p.Layer())
		regs := atlas.Regions(p, v)
		for f := atlas.Face(0); f < atlas.FaceCount; f++ {
			r := regs[f].Rect(scale)
			status := "ok"
			if _, err := skin.Slice(im, r, regs[f].Rotate180); err != nil {
				status = "OUT OF BOUNDS"
			}
			rot := ""
			if regs[f].Rotate180 {
				rot = " rot180"
			}
			fmt.Printf("  %-7s %v%s  %s\n", f, r, rot, status)
		}
	}
}
