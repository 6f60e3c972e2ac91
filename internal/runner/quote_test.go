// SPDX-License-Identifier: MPL-2.0

package runner

import "testing"

func TestQuoteCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		argv []string
		want string
	}{
		{"plain words pass through", []string{"/opt/py/python", "script.py"}, "/opt/py/python script.py"},
		{"spaces are quoted", []string{"/opt/py/python", "my script.py"}, "/opt/py/python 'my script.py'"},
		{"empty argument survives", []string{"/opt/py/python", ""}, "/opt/py/python ''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := QuoteCommand(tt.argv); got != tt.want {
				t.Errorf("QuoteCommand(%v) = %q, want %q", tt.argv, got, tt.want)
			}
		})
	}
}
