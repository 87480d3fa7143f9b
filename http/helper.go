package http

import (
	"errors"
	"math"
)

func atoi(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, errors.New("invalid number")
	}

	var n int
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, errors.New("invalid number")
		}
		if n > (math.MaxInt-9)/10 {
			return 0, errors.New("number overflow")
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

// Helper function to write integer to buffer without allocation
func writeIntToBuffer(n int, buf []byte) int {
	if n == 0 {
		buf[0] = '0'
		return 1
	}

	// Calculate digits needed
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Write digits backwards
	for i := digits - 1; i >= 0; i-- {
		buf[i] = '0' + byte(n%10)
		n /= 10
	}

	return digits
}
