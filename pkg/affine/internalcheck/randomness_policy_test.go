package internalcheck

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// libraryPackages are the packages the policy applies to. Test files are
// exempt: deterministic seeded sources are exactly what tests should use.
var libraryPackages = []string{
	"github.com/MathNerdGamer/affine-cipher/pkg/affine",
	"github.com/MathNerdGamer/affine-cipher/pkg/intmod",
}

// forbiddenImports lists packages library code must not reach for. Key
// material comes from the caller's io.Reader or crypto/rand, never from a
// non-cryptographic generator.
var forbiddenImports = []string{
	"math/rand",
	"math/rand/v2",
}

func TestNoMathRandInLibraryCode(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, libraryPackages...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			fset := pkg.Fset
			filename := fset.Position(file.Pos()).Filename
			if strings.HasSuffix(filename, "_test.go") {
				continue
			}

			for _, imp := range file.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				if err != nil {
					continue
				}
				if forbidden(path) {
					pos := fset.Position(imp.Pos())
					findings = append(findings, fmt.Sprintf("%s: %s is forbidden in library code; use crypto/rand or an injected reader", pos, path))
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("randomness policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func forbidden(path string) bool {
	for _, f := range forbiddenImports {
		if path == f {
			return true
		}
	}
	return false
}
