package validate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"counter-backend/api/common/statecode"
	"counter-backend/api/models/request"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testCtx(t *testing.T, method, target, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	if body == "" {
		ctx.Request = httptest.NewRequest(method, target, nil)
		return ctx
	}
	ctx.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")
	return ctx
}

func TestCounterValueValidate(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  int
	}{
		{"testnet", "chainId=2810", statecode.CommonSuccess},
		{"mainnet", "chainId=2818", statecode.CommonSuccess},
		{"unknown chain", "chainId=9999", statecode.ChainIdErr},
		{"missing chain", "", statecode.ChainIdEmpty},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := testCtx(t, http.MethodGet, "/counter/value?"+c.query, "")
			req := request.CounterValue{}
			assert.Equal(t, c.want, NewCounterValue().CounterValue(ctx, &req))
		})
	}
}

func TestTxStatusValidate(t *testing.T) {
	// 自定义 txhash 规则要先注册，线上是 main 里做的
	BindingValidator()

	okHash := "0x" + strings.Repeat("ab", 32)
	cases := []struct {
		name  string
		query string
		want  int
	}{
		{"ok", "chainId=2810&txHash=" + okHash, statecode.CommonSuccess},
		{"too short", "chainId=2810&txHash=0xabc", statecode.TxHashFormatErr},
		{"no 0x prefix", "chainId=2810&txHash=" + strings.Repeat("ab", 33), statecode.TxHashFormatErr},
		{"not hex", "chainId=2810&txHash=0x" + strings.Repeat("zz", 32), statecode.TxHashFormatErr},
		{"missing hash", "chainId=2810", statecode.ParameterEmptyErr},
		{"missing chain", "txHash=" + okHash, statecode.ChainIdEmpty},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := testCtx(t, http.MethodGet, "/counter/txStatus?"+c.query, "")
			req := request.TxStatus{}
			assert.Equal(t, c.want, NewTxStatus().TxStatus(ctx, &req))
		})
	}
}

func TestCounterIncrementValidate(t *testing.T) {
	addr := "0x8ba1f109551bd432803012645ac136ddd64dba72"
	sig := "0x" + strings.Repeat("00", 65)
	signed := `"address":"` + addr + `","signature":"` + sig + `","signedAt":1700000000`
	cases := []struct {
		name string
		body string
		want int
	}{
		{"anonymous", `{"chainId":2810}`, statecode.CommonSuccess},
		{"signed", `{"chainId":2810,` + signed + `}`, statecode.CommonSuccess},
		{"empty body", "", statecode.ParameterEmptyErr},
		{"unknown chain", `{"chainId":1}`, statecode.ChainIdErr},
		// 地址、签名、签名时间必须一起传
		{"address without signature", `{"chainId":2810,"address":"` + addr + `"}`, statecode.SignatureErr},
		{"signature without address", `{"chainId":2810,"signature":"` + sig + `"}`, statecode.SignatureErr},
		{"signed without signedAt", `{"chainId":2810,"address":"` + addr + `","signature":"` + sig + `"}`, statecode.SignatureErr},
		{"bad address", `{"chainId":2810,"address":"not-an-address","signature":"` + sig + `","signedAt":1700000000}`, statecode.AddressFormatErr},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := testCtx(t, http.MethodPost, "/counter/increment", c.body)
			req := request.CounterIncrement{}
			assert.Equal(t, c.want, NewCounterIncrement().CounterIncrement(ctx, &req))
		})
	}
}
