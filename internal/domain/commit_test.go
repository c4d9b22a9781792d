package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangedFiles(t *testing.T) {
	tests := map[string]struct {
		diff string
		want []string
	}{
		"single-file": {
			diff: "diff --git a/prisma/schema.prisma b/prisma/schema.prisma\n" +
				"index 5f4b263..c13c41b 100644\n" +
				"--- a/prisma/schema.prisma\n" +
				"+++ b/prisma/schema.prisma\n" +
				"@@ -13,8 +13,8 @@\n" +
				"-  firstName    String\n" +
				"+  firstName    String?\n",
			want: []string{"prisma/schema.prisma"},
		},
		"renamed-and-repeated": {
			diff: "diff --git a/old.go b/new.go\r\n" +
				"similarity index 90%\r\n" +
				"diff --git a/lib/index.js b/lib/index.js\n" +
				"diff --git a/lib/index.js b/lib/index.js\n",
			want: []string{"new.go", "lib/index.js"},
		},
		"context-lines-are-not-headers": {
			diff: " diff --git a/x b/x\n+diff --git a/y b/y\n",
			want: []string{},
		},
		"plain-text": {
			diff: "changed a few things",
			want: []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChangedFiles(tt.diff))
		})
	}
}
