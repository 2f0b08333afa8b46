package zipaddr

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"tai-to-tai prefix", "台北市中正區", "臺北市中正區"},
		{"bare taipei prefix", "北市中正區", "臺北市中正區"},
		{"guarded by hsinchu prefix", "新竹北市中正區", "新竹北市中正區"},
		{"guarded by trailing 場", "北市場", "北市場"},
		{"province prefix dropped", "臺灣省臺北市中正區", "臺北市中正區"},
		{"province prefix kept before 大道", "臺灣大道", "臺灣大道"},
		{"full-width digits", "中正路１０號", "中正路10號"},
		{"han numeral one before 段", "忠孝東路一段", "忠孝東路1段"},
		{"han numeral ten before 段", "忠孝東路十段", "忠孝東路10段"},
		{"han numeral ninety-nine before 段", "忠孝東路九十九段", "忠孝東路99段"},
		{"hyphen becomes 之", "中正路10-2號", "中正路10之2號"},
		{"leading ascii stripped", "No.1忠孝東路1段1號", "忠孝東路1段1號"},
		{"punctuation folded", "中正路, 10號", "中正路10號"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Normalize(c.in); got != c.want {
				t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
