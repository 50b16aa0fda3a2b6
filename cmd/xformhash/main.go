// Command xformhash hashes the identity transform to a 64-bit lattice
// key with the chosen variant and resolution flags and prints the key,
// for spot-checking the xformhash variants from the command line.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/willsheffler/scheme/xform"
	"github.com/willsheffler/scheme/xformhash"
)

func main() {
	variant := flag.String("variant", "quat-bcc7", "hash variant: quat-bcc7, quat-bcc7-zorder, bt24-bcc3, bt24-bcc3-zorder, bt24-bcc6, bt24-cubic-zorder, quatgrid-cubic")
	cartResl := flag.Float64("cart-resl", 1.0, "cartesian resolution, angstroms")
	angResl := flag.Float64("ang-resl", 10.0, "angular resolution, degrees")
	cartBound := flag.Float64("cart-bound", 512.0, "cartesian bound, angstroms")
	flag.Parse()

	x := xform.Identity()

	key, err := hashOne(*variant, *cartResl, *angResl, *cartBound, x)
	if err != nil {
		log.Fatalf("xformhash: %v", err)
	}
	fmt.Printf("variant=%s key=%d (0x%016x)\n", *variant, key, key)
}

func hashOne(variant string, cartResl, angResl, cartBound float64, x xform.Xform) (uint64, error) {
	switch variant {
	case "quat-bcc7":
		h, err := xformhash.NewQuatBCC7(cartResl, angResl, cartBound)
		if err != nil {
			return 0, err
		}
		return h.GetKey(x), nil
	case "quat-bcc7-zorder":
		h, err := xformhash.NewQuatBCC7Zorder(cartResl, angResl, cartBound)
		if err != nil {
			return 0, err
		}
		return h.GetKey(x), nil
	case "bt24-bcc3":
		h, err := xformhash.NewBt24BCC3(cartResl, angResl, cartBound)
		if err != nil {
			return 0, err
		}
		return h.GetKey(x), nil
	case "bt24-bcc3-zorder":
		h, err := xformhash.NewBt24BCC3Zorder(cartResl, angResl, cartBound)
		if err != nil {
			return 0, err
		}
		return h.GetKey(x), nil
	case "bt24-bcc6":
		h, err := xformhash.NewBt24BCC6(cartResl, angResl, cartBound)
		if err != nil {
			return 0, err
		}
		return h.GetKey(x), nil
	case "bt24-cubic-zorder":
		h, err := xformhash.NewBt24CubicZorder(cartResl, angResl, cartBound)
		if err != nil {
			return 0, err
		}
		return h.GetKey(x), nil
	case "quatgrid-cubic":
		h, err := xformhash.NewQuatgridCubic(cartResl, angResl, cartBound)
		if err != nil {
			return 0, err
		}
		return h.GetKey(x), nil
	default:
		return 0, fmt.Errorf("xformhash: unknown variant %q", variant)
	}
}
