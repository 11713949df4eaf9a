// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package presenter

// rotate cyclically rotates buf left by k positions in place, as three
// reversals. No allocation, any k.
func rotate(buf []byte, k int) {
	if len(buf) == 0 {
		return
	}
	k %= len(buf)
	if k < 0 {
		k += len(buf)
	}
	reverse(buf[:k])
	reverse(buf[k:])
	reverse(buf)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
