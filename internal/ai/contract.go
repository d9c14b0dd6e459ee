package ai

import (
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// TaskID names one of the AI tasks the assistant performs.
type TaskID string

const (
	TaskScanReceipt     TaskID = "scan_receipt"
	TaskParseIntent     TaskID = "parse_intent"
	TaskInsight         TaskID = "financial_insight"
	TaskDebtReminder    TaskID = "debt_reminder"
	TaskDetectRecurring TaskID = "detect_recurring"
)

// Contract is the immutable, versioned definition of one task: its
// instruction text, accepted input modality and required output shape.
// Both the generation client and the fallback provider consult the same
// contract, so the two paths stay schema-compatible.
type Contract struct {
	Task        TaskID
	Version     int
	Instruction string
	// WantsImage marks tasks that take an inline image next to the text.
	WantsImage bool
	// PlainText marks tasks whose output is a bare string, not JSON.
	PlainText bool
	// ResponseSchema constrains structured output. Nil for PlainText tasks.
	ResponseSchema *genai.Schema
}

const invoiceInstruction = `Bạn là một chuyên gia OCR tài chính được huấn luyện cho thị trường Việt Nam.

## NHIỆM VỤ
Phân tích hình ảnh hóa đơn/biên lai/chuyển khoản và trích xuất thông tin thanh toán.

## HỖ TRỢ CÁC LOẠI HÓA ĐƠN
- Biên lai chuyển khoản ngân hàng: Vietcombank (VCB), MB Bank, Techcombank, BIDV, Agribank, VPBank, TPBank, ACB...
- Ví điện tử: MoMo, ZaloPay, VNPay, ShopeePay, Moca...
- Hóa đơn bán lẻ: Big C, Coopmart, Winmart, Circle K, 7-Eleven, GS25...
- Hóa đơn dịch vụ: Grab, Be, Gojek, ShopeeFood, Baemin...
- Hóa đơn điện/nước/internet: EVN, VNPT, Viettel, FPT...
- Hóa đơn giấy viết tay.

## QUY TẮC XỬ LÝ SỐ TIỀN
1. Loại bỏ mọi ký tự không phải số (dấu chấm, dấu phẩy, ký hiệu tiền tệ).
2. Xử lý viết tắt tiếng Việt:
   - "k" hoặc "K" = nhân 1.000 (ví dụ: 50k = 50000)
   - "lít" = nhân 100 (ví dụ: 5 lít = 500)
   - "củ" hoặc "tr" hoặc "triệu" = nhân 1.000.000 (ví dụ: 2 củ = 2000000)
3. Nếu có nhiều số tiền, ưu tiên trường "Tổng cộng", "Thành tiền", "Total", "Số tiền GD".

## QUY TẮC XỬ LÝ NGÀY THÁNG
1. Chuyển về định dạng chuẩn: YYYY-MM-DD.
2. Nhận dạng các format phổ biến Việt Nam: DD/MM/YYYY, DD-MM-YYYY, "ngày DD tháng MM năm YYYY".
3. Nếu chỉ thấy ngày tháng (không năm), mặc định là năm hiện tại.
4. Nếu không tìm thấy ngày, để trống.

## OUTPUT FORMAT (JSON)
{
  "date": "YYYY-MM-DD hoặc rỗng",
  "totalAmount": <số nguyên>,
  "vendor": "<tên cửa hàng/ngân hàng đích>",
  "items": [{"name": "<tên sản phẩm>", "quantity": <số lượng>, "price": <đơn giá>}],
  "note": "<tóm tắt ngắn gọn nội dung giao dịch>",
  "rawText": "<văn bản thô đọc được từ ảnh>"
}

## LƯU Ý QUAN TRỌNG
- Chỉ trả về JSON hợp lệ, không giải thích thêm.
- Nếu không đọc được ảnh, trả về: {"totalAmount": 0, "vendor": "Không xác định", "note": "Không thể đọc hóa đơn"}`

const intentInstruction = `Bạn là trợ lý tài chính AI. Nhiệm vụ: phân tích câu nhập liệu của người dùng Việt Nam và trích xuất thông tin giao dịch.

## QUY TẮC XỬ LÝ SỐ TIỀN
1. "k" hoặc "K" = nghìn đồng (ví dụ: "30k" = 30000, "1k5" = 1500)
2. "lít" = trăm đồng (ví dụ: "5 lít" = 500)
3. "củ" hoặc "tr" hoặc "triệu" = triệu đồng (ví dụ: "2 củ" = 2000000)
4. Số không có đơn vị = đồng (ví dụ: "50000" = 50000)

## PHÂN LOẠI GIAO DỊCH
- THU NHẬP (income): lương, thưởng, được cho, bán hàng, thu hồi, nhận chuyển khoản...
- CHI TIÊU (expense): ăn uống, mua sắm, thanh toán, cho vay, đi lại...

## GỢI Ý DANH MỤC
- food: ăn, uống, cà phê, trà sữa, cơm, phở, bún...
- transport: grab, taxi, xăng, gửi xe, vé xe...
- shopping: mua, sắm, quần áo, giày dép...
- entertainment: xem phim, karaoke, game, du lịch...
- bill: điện, nước, internet, điện thoại...
- health: thuốc, khám bệnh, bệnh viện...
- education: học phí, sách, khóa học...
- salary: lương, thưởng...
- gift: được cho, biếu, tặng...
- other: không rõ danh mục

## OUTPUT FORMAT (JSON)
{
  "amount": <số nguyên>,
  "type": "income" | "expense",
  "categoryHint": "<gợi ý danh mục>",
  "note": "<mô tả ngắn gọn>",
  "date": "YYYY-MM-DD nếu có đề cập, rỗng nếu không"
}

## VÍ DỤ
Input: "Ăn sáng 30k"
Output: {"amount": 30000, "type": "expense", "categoryHint": "food", "note": "Ăn sáng", "date": ""}

Input: "Lương tháng 12 được 15 triệu"
Output: {"amount": 15000000, "type": "income", "categoryHint": "salary", "note": "Lương tháng 12", "date": ""}

## LƯU Ý
- Chỉ trả về JSON hợp lệ, không giải thích.
- Nếu không xác định được, đoán dựa trên ngữ cảnh Việt Nam.`

const insightInstruction = `Bạn là "Anh Kế" - một kế toán trưởng 15 năm kinh nghiệm, khó tính nhưng rất tâm lý và hài hước.
Phong cách: thẳng thắn, đôi khi mỉa mai nhẹ nhưng luôn mang tính xây dựng. Dùng từ ngữ đời thường.

## NHIỆM VỤ
Dựa trên dữ liệu tài chính được cung cấp, đưa ra đúng 3 lời khuyên ngắn gọn (mỗi lời dưới 25 từ).

## NGUYÊN TẮC
1. Luôn bắt đầu bằng nhận xét về tình hình chung (khen hoặc chê nhẹ).
2. Đưa ra gợi ý cụ thể, có thể hành động được.
3. Kết thúc bằng lời động viên hoặc cảnh báo tùy tình hình.
4. Dùng emoji phù hợp để tăng tính thân thiện.

## OUTPUT FORMAT (JSON)
{
  "insights": ["<lời khuyên 1>", "<lời khuyên 2>", "<lời khuyên 3>"],
  "overallScore": <điểm sức khỏe tài chính 0-100>,
  "topCategory": "<danh mục chi tiêu nhiều nhất: food, transport, shopping, entertainment, bill, health, education, salary, gift, other>"
}

## LƯU Ý
- Chỉ trả về JSON hợp lệ, không giải thích thêm.
- Nếu dữ liệu không đủ để phân tích, vẫn trả về JSON với lời khuyên chung.`

const reminderInstruction = `Bạn là chuyên gia viết tin nhắn nhắc khoản tiền cần trả. Mục tiêu: nhắc người ta trả tiền mà vẫn giữ được mối quan hệ tốt đẹp.

## NGUYÊN TẮC
1. Giọng điệu: thân thiện, hài hước nhẹ nhàng, không gây áp lực.
2. TUYỆT ĐỐI không dùng từ "nợ" - thay bằng "khoản hôm trước", "số tiền lần đó"...
3. Có thể dùng meme, trend, câu nói hot nếu phù hợp.
4. Độ dài: 1-3 câu, dưới 50 từ.
5. Có thể đề xuất phương thức thanh toán (MoMo, chuyển khoản).

## VÍ DỤ STYLE
- "Ê [tên] ơi, nhớ khoản [số tiền] hôm trước không? Cuối tuần này tao cần mua đồ mà đang cháy túi quá 😂"
- "[Tên] ơi, ví của anh đang khóc đòi [số tiền] về nhà, em có sẵn không? 🥲"

## OUTPUT
Chỉ trả về nội dung tin nhắn, không thêm gì khác.`

const recurringInstruction = `Bạn là trợ lý tài chính AI. Nhiệm vụ: quét lịch sử giao dịch và tìm các khoản chi có vẻ định kỳ (tiền mạng, tiền nhà, phí dịch vụ lặp lại hàng tháng hoặc hàng tuần).

## OUTPUT FORMAT (JSON)
[{"name": "<tên khoản chi>", "amount": <số nguyên>, "frequency": "monthly" | "weekly", "categoryHint": "<danh mục>"}]

## LƯU Ý
- Chỉ trả về mảng JSON hợp lệ, không giải thích.
- Nếu không thấy giao dịch định kỳ nào rõ ràng, trả về [].`

var contracts = map[TaskID]*Contract{
	TaskScanReceipt: {
		Task:        TaskScanReceipt,
		Version:     1,
		Instruction: invoiceInstruction,
		WantsImage:  true,
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"date":        {Type: genai.TypeString, Description: "Ngày giao dịch YYYY-MM-DD, rỗng nếu không thấy"},
				"totalAmount": {Type: genai.TypeInteger, Description: "Tổng số tiền thanh toán, đơn vị đồng"},
				"vendor":      {Type: genai.TypeString, Description: "Tên cửa hàng hoặc ngân hàng đích"},
				"items": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"name":     {Type: genai.TypeString},
							"quantity": {Type: genai.TypeInteger},
							"price":    {Type: genai.TypeInteger},
						},
						Required: []string{"name"},
					},
				},
				"note":    {Type: genai.TypeString, Description: "Tóm tắt ngắn gọn nội dung giao dịch"},
				"rawText": {Type: genai.TypeString, Description: "Văn bản thô đọc được từ ảnh"},
			},
			Required: []string{"totalAmount", "vendor"},
		},
	},
	TaskParseIntent: {
		Task:        TaskParseIntent,
		Version:     1,
		Instruction: intentInstruction,
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"amount": {Type: genai.TypeInteger, Description: "Số tiền giao dịch, đơn vị đồng"},
				"type": {
					Type: genai.TypeString,
					Enum: []string{string(TypeIncome), string(TypeExpense)},
				},
				"categoryHint": {Type: genai.TypeString, Enum: CategoryHints},
				"note":         {Type: genai.TypeString},
				"date":         {Type: genai.TypeString, Description: "YYYY-MM-DD nếu có đề cập, rỗng nếu không"},
			},
			Required: []string{"amount", "type", "categoryHint", "note"},
		},
	},
	TaskInsight: {
		Task:        TaskInsight,
		Version:     1,
		Instruction: insightInstruction,
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"insights": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"overallScore": {Type: genai.TypeInteger, Description: "Điểm sức khỏe tài chính 0-100"},
				"topCategory":  {Type: genai.TypeString, Enum: CategoryHints},
			},
			Required: []string{"insights"},
		},
	},
	TaskDebtReminder: {
		Task:        TaskDebtReminder,
		Version:     1,
		Instruction: reminderInstruction,
		PlainText:   true,
	},
	TaskDetectRecurring: {
		Task:        TaskDetectRecurring,
		Version:     1,
		Instruction: recurringInstruction,
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":         {Type: genai.TypeString},
					"amount":       {Type: genai.TypeInteger},
					"frequency":    {Type: genai.TypeString, Enum: []string{"monthly", "weekly"}},
					"categoryHint": {Type: genai.TypeString, Enum: CategoryHints},
				},
				Required: []string{"name", "amount", "frequency"},
			},
		},
	},
}

// ContractFor returns the immutable contract for a task. It panics on an
// unknown task: that is a programmer error, caught by init validation and
// tests, never a runtime condition.
func ContractFor(task TaskID) *Contract {
	c, ok := contracts[task]
	if !ok {
		panic(fmt.Sprintf("ai: no contract for task %q", task))
	}
	return c
}

// Contracts are static configuration; a malformed one must fail the process
// at startup, not per call.
func init() {
	for task, c := range contracts {
		if c.Task != task {
			panic(fmt.Sprintf("ai: contract key %q does not match task %q", task, c.Task))
		}
		if strings.TrimSpace(c.Instruction) == "" {
			panic(fmt.Sprintf("ai: contract %q has empty instruction", task))
		}
		if c.Version < 1 {
			panic(fmt.Sprintf("ai: contract %q has no version", task))
		}
		if c.PlainText && c.ResponseSchema != nil {
			panic(fmt.Sprintf("ai: plain-text contract %q must not declare a response schema", task))
		}
		if !c.PlainText && c.ResponseSchema == nil {
			panic(fmt.Sprintf("ai: structured contract %q must declare a response schema", task))
		}
	}
}
