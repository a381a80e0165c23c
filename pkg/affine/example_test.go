package affine_test

import (
	"fmt"

	"github.com/MathNerdGamer/affine-cipher/pkg/affine"
)

func ExampleEncrypt() {
	key := affine.NewKey(7, 2)

	ciphertext, err := affine.Encrypt(key, "Hello, world!")
	if err != nil {
		fmt.Println("encrypt:", err)
		return
	}

	plaintext, err := affine.Decrypt(key, ciphertext)
	if err != nil {
		fmt.Println("decrypt:", err)
		return
	}

	fmt.Println(ciphertext)
	fmt.Println(plaintext)
	// Output:
	// zS@@"?wv"M@L_
	// Hello, world!
}

func ExampleGenerateKey() {
	// A nil reader draws the key from crypto/rand.
	key, err := affine.GenerateKey(nil)
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	fmt.Println(key.Valid())
	// Output:
	// true
}
