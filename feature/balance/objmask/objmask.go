// Package objmask holds the fixed table of OBJ_MASK category flags.
package objmask

import "objmask-workaround/feature/balance/models"

// Count is the number of category flags the game defines.
const Count = 32

var categories = [Count]models.Category{
	{Code: 'A', Name: "Flag_A_OBJMASK_ARMORED"},
	{Code: 'B', Name: "Flag_B_OBJMASK_BOMBARD"},
	{Code: 'C', Name: "Flag_C_OBJMASK_CIVILIAN"},
	{Code: 'D', Name: "Flag_D_OBJMASK_MUSKET_INF"},
	{Code: 'E', Name: "Flag_E_OBJMASK_ELEPHANT"},
	{Code: 'F', Name: "Flag_F_OBJMASK_FOOT"},
	{Code: 'G', Name: "Flag_G_OBJMASK_GUN"},
	{Code: 'H', Name: "Flag_H_OBJMASK_HEAVY_INF"},
	{Code: 'I', Name: "Flag_I_OBJMASK_MODERN_INF"},
	{Code: 'J', Name: "Flag_J_OBJMASK_CARRY_AIR"},
	{Code: 'K', Name: "Flag_K_OBJMASK_FOOT_ARCHER"},
	{Code: 'L', Name: "Flag_L_OBJMASK_LARGE"},
	{Code: 'M', Name: "Flag_M_OBJMASK_MOUNTED"},
	{Code: 'N', Name: "Flag_N_OBJMASK_NAVAL"},
	{Code: 'O', Name: "Flag_O_OBJMASK_HORSE_ARCHER"},
	{Code: 'P', Name: "Flag_P_OBJMASK_SPARSE"},
	{Code: 'Q', Name: "Flag_Q_OBJMASK_LIGHT_INF"},
	{Code: 'R', Name: "Flag_R_OBJMASK_ARCHERY"},
	{Code: 'S', Name: "Flag_S_OBJMASK_SIEGE"},
	{Code: 'T', Name: "Flag_T_OBJMASK_WAR_MACHINE"},
	{Code: 'U', Name: "Flag_U_OBJMASK_ARMORPIERCE"},
	{Code: 'V', Name: "Flag_V_OBJMASK_VEHICLE"},
	{Code: 'W', Name: "Flag_W_OBJMASK_MELEE"},
	{Code: 'X', Name: "Flag_X_OBJMASK_EXPLOSIVE"},
	{Code: 'Y', Name: "Flag_Y_OBJMASK_HEAVY_CAV"},
	{Code: 'Z', Name: "Flag_Z_OBJMASK_DETECT"},
	{Code: '1', Name: "Flag_1_OBJMASK_UNUSED"},
	{Code: '2', Name: "Flag_2_OBJMASK_MISSILE"},
	{Code: '3', Name: "Flag_3_OBJMASK_AIR"},
	{Code: '4', Name: "Flag_4_OBJMASK_LIGHT_CAV"},
	{Code: '5', Name: "Flag_5_OBJMASK_PIKE"},
	{Code: '6', Name: "Flag_6_OBJMASK_ANTI_AIR"},
}

var byName = func() map[string]int {
	m := make(map[string]int, Count)
	for i, c := range categories {
		m[c.Name] = i
	}
	return m
}()

// All returns the categories in table order.
func All() []models.Category {
	out := make([]models.Category, Count)
	copy(out, categories[:])
	return out
}

// Names returns the category names in table order.
func Names() []string {
	out := make([]string, Count)
	for i, c := range categories {
		out[i] = c.Name
	}
	return out
}

// Lookup returns the table position of the category with flag code c.
func Lookup(c rune) (int, bool) {
	for i, cat := range categories {
		if cat.Code == c {
			return i, true
		}
	}
	return 0, false
}

// CategoryFor returns the category name for flag code c.
func CategoryFor(c rune) (string, bool) {
	i, ok := Lookup(c)
	if !ok {
		return "", false
	}
	return categories[i].Name, true
}

// IsCategory reports whether name is one of the fixed category names.
func IsCategory(name string) bool {
	_, ok := byName[name]
	return ok
}

// Name returns the category name at table position i.
func Name(i int) string {
	return categories[i].Name
}

// MaskNames expands m into category names in table order.
func MaskNames(m models.Mask) []string {
	idx := m.Indexes()
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = categories[i].Name
	}
	return out
}
