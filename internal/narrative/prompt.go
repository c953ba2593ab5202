package narrative

import (
	"fmt"

	"manjai/server/internal/models"
)

const promptTemplate = `คุณเป็นผู้เชี่ยวชาญด้านการประเมินราคาอสังหาริมทรัพย์ในประเทศไทย กรุณาประเมินราคาทรัพย์สินตามข้อมูลต่อไปนี้:

ประเภททรัพย์สิน: %s
ทำเลที่ตั้ง: %s
ขนาดพื้นที่: %s ตารางเมตร
จำนวนห้องนอน: %s ห้อง
จำนวนห้องน้ำ: %s ห้อง
อายุอาคาร: %s ปี
สภาพทรัพย์สิน: %s
ข้อมูลเพิ่มเติม: %s

กรุณาวิเคราะห์และให้คำแนะนำเกี่ยวกับ:
1. ราคาประเมินโดยประมาณ (บาท)
2. ปัจจัยที่ส่งผลต่อราคา
3. แนวโน้มตลาดในพื้นที่
4. คำแนะนำสำหรับผู้ซื้อหรือผู้ขาย

โปรดตอบเป็นภาษาไทยและให้รายละเอียดที่ชัดเจน`

// BuildPrompt renders the appraisal prompt sent to the model.
func BuildPrompt(req *models.EvaluationRequest) string {
	return fmt.Sprintf(promptTemplate,
		req.PropertyType,
		req.Location,
		req.Area,
		req.Bedrooms,
		req.Bathrooms,
		req.Age,
		req.Condition,
		req.AdditionalInfo,
	)
}
